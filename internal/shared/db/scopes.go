package db

import (
	"gorm.io/gorm"

	"likenovel/internal/shared/constants"
)

// Paginate applies LIMIT/OFFSET for a 1-based page.
//
//	db.Model(&models.NoticeModel{}).Scopes(db.Paginate(page, size)).Find(&rows)
func Paginate(page, countPerPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = constants.DefaultPage
		}
		if countPerPage < 1 {
			countPerPage = constants.DefaultCountPerPage
		}
		if countPerPage > constants.MaxCountPerPage {
			countPerPage = constants.MaxCountPerPage
		}
		return db.Offset((page - 1) * countPerPage).Limit(countPerPage)
	}
}

// UseYN filters rows whose use_yn flag is set.
func UseYN() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("use_yn = ?", constants.FlagYes)
	}
}

// PinnedFirst orders by primary_yn DESC, updated_date DESC.
func PinnedFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("primary_yn DESC").Order("updated_date DESC")
	}
}

// LatestFirst orders by updated_date DESC.
func LatestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_date DESC")
	}
}
