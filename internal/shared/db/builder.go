package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "likenovel/internal/shared/errors"
)

// AllowList names the columns a request may write.
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from column names.
func NewAllowList(columns ...string) AllowList {
	a := make(AllowList, len(columns))
	for _, c := range columns {
		a[c] = struct{}{}
	}
	return a
}

// Filter keeps only allowed keys. Unknown keys are dropped silently.
func (a AllowList) Filter(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := a[k]; ok {
			out[k] = v
		}
	}
	return out
}

// InsertMap returns the allowed fields plus audit columns for an INSERT.
func InsertMap(allow AllowList, fields map[string]interface{}, writerID int64, now time.Time) map[string]interface{} {
	out := allow.Filter(fields)
	out["created_id"] = writerID
	out["created_date"] = now
	out["updated_id"] = writerID
	out["updated_date"] = now
	return out
}

// UpdateMap returns the allowed fields with updated_id/updated_date always set.
func UpdateMap(allow AllowList, fields map[string]interface{}, writerID int64, now time.Time) map[string]interface{} {
	out := allow.Filter(fields)
	out["updated_id"] = writerID
	out["updated_date"] = now
	return out
}

// CheckExistsOr404 maps a not-found lookup to a 404 with msg and other failures through FromDB.
func CheckExistsOr404(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(msg)
	}
	return apperrors.FromDB(err)
}

// IgnoreNotFound turns gorm.ErrRecordNotFound into (false, nil).
func IgnoreNotFound(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
