package db

import "fmt"

// FilePathSubquery returns a scalar sub-select that resolves a file-group column to the
// path of its first active item.
//
//	Select("n.id, " + db.FilePathSubquery("n.file_group_id", "file_path"))
func FilePathSubquery(groupColumn, alias string) string {
	return fmt.Sprintf(
		"(SELECT fi.file_path FROM tb_common_file_item fi WHERE fi.file_group_id = %s AND fi.use_yn = 'Y' ORDER BY fi.file_id LIMIT 1) AS %s",
		groupColumn, alias)
}
