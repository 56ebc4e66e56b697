// Package orm holds small helpers shared by the repositories.
package orm

import "gorm.io/gorm"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination describes one page of a list result.
type Pagination struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// Paginate counts q, applies offset/limit, and scans the page into dest.
// q must already carry its model, filters, and ordering. Page and limit are
// clamped to sane values so callers can pass query params through unchecked.
func Paginate(q *gorm.DB, dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	if err := q.Offset((page - 1) * limit).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	last := int((total + int64(limit) - 1) / int64(limit))
	if last < 1 {
		last = 1
	}

	return Pagination{Page: page, Limit: limit, Total: total, LastPage: last}, nil
}
