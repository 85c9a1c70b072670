package dto

// PresignedUploadDTO is the response of a presigned-upload request.
type PresignedUploadDTO struct {
	FileGroupID int64  `json:"fileGroupId"`
	FileID      int64  `json:"fileId"`
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath"`
	UploadURL   string `json:"uploadUrl"`
}
