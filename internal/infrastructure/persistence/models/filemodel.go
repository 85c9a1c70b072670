package models

type CommonFileModel struct {
	FileGroupID int64  `gorm:"column:file_group_id;primaryKey;autoIncrement"`
	GroupType   string `gorm:"column:group_type;size:20;not null"`
	UseYN       string `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (CommonFileModel) TableName() string {
	return "tb_common_file"
}

type CommonFileItemModel struct {
	FileID      int64  `gorm:"column:file_id;primaryKey;autoIncrement"`
	FileGroupID int64  `gorm:"column:file_group_id;not null;index"`
	FileName    string `gorm:"column:file_name;size:100;not null;index"`
	FileOrgName string `gorm:"column:file_org_name;size:255;not null"`
	FilePath    string `gorm:"column:file_path;size:500;not null"`
	FileSize    int64  `gorm:"column:file_size;not null;default:0"`
	UseYN       string `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (CommonFileItemModel) TableName() string {
	return "tb_common_file_item"
}
