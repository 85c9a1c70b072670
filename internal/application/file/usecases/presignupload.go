package usecases

import (
	"context"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"likenovel/internal/application/file/dto"
	"likenovel/internal/domain/file"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type PresignUploadCommand struct {
	GroupType string
	FileName  string
	FileSize  int64
	UserID    int64
}

// PresignUploadUseCase reserves a file record and returns a URL the client uploads to directly.
// The group and item rows are only committed when the presigner succeeds.
type PresignUploadUseCase struct {
	repo      file.Repository
	presigner file.Presigner
	cdnURL    string
	txMgr     db.Runner
	logger    logger.Interface
	now       func() time.Time
	newID     func() string
}

func NewPresignUploadUseCase(
	repo file.Repository,
	presigner file.Presigner,
	cdnURL string,
	txMgr db.Runner,
	logger logger.Interface,
) *PresignUploadUseCase {
	return &PresignUploadUseCase{
		repo:      repo,
		presigner: presigner,
		cdnURL:    cdnURL,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.Now,
		newID:     uuid.NewString,
	}
}

func (uc *PresignUploadUseCase) Execute(ctx context.Context, cmd PresignUploadCommand) (*dto.PresignedUploadDTO, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrLoginRequired
	}
	group, err := file.ParseGroupType(cmd.GroupType)
	if err != nil {
		return nil, err
	}
	orgName := strings.TrimSpace(cmd.FileName)
	if orgName == "" {
		return nil, errors.NewValidationError("fileName 항목은 필수입니다.")
	}
	if cmd.FileSize < 0 {
		return nil, errors.NewValidationError("fileSize 값이 올바르지 않습니다.")
	}

	var result *dto.PresignedUploadDTO
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		name, err := uc.allocateName(txCtx, orgName)
		if err != nil {
			return err
		}
		key := file.ObjectKey(group, name)
		now := uc.now()

		groupID, err := uc.repo.CreateGroup(txCtx, group, cmd.UserID, now)
		if err != nil {
			return err
		}
		item := &file.Item{
			FileGroupID: groupID,
			FileName:    name,
			FileOrgName: orgName,
			FilePath:    file.CDNPath(uc.cdnURL, key),
			FileSize:    cmd.FileSize,
		}
		if err := uc.repo.CreateItem(txCtx, item, cmd.UserID, now); err != nil {
			return err
		}

		url, err := uc.presigner.PresignUpload(txCtx, key, contentType(orgName))
		if err != nil {
			return errors.NewInternalError("업로드 URL 생성에 실패했습니다.").WithCause(err)
		}
		result = &dto.PresignedUploadDTO{
			FileGroupID: groupID,
			FileID:      item.FileID,
			FileName:    name,
			FilePath:    item.FilePath,
			UploadURL:   url,
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("presigned upload failed", "user_id", cmd.UserID, "group_type", cmd.GroupType, "error", err)
		return nil, err
	}

	uc.logger.Infow("presigned upload issued",
		"user_id", cmd.UserID,
		"file_group_id", result.FileGroupID,
		"file_id", result.FileID)
	return result, nil
}

// allocateName draws fresh UUID names until one is not held by an active item or ctx ends.
func (uc *PresignUploadUseCase) allocateName(ctx context.Context, orgName string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := file.StoredName(uc.newID(), orgName)
		inUse, err := uc.repo.NameInUse(ctx, name)
		if err != nil {
			return "", err
		}
		if !inUse {
			return name, nil
		}
	}
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
