package service

import "github.com/fcamara/user-address-api/internal/core/ports"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizeQuery clamps pagination parameters and fills defaults.
func normalizeQuery(q ports.PageQuery, defaultSort string) ports.PageQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = defaultSort
	}
	if q.SortDir != "desc" {
		q.SortDir = "asc"
	}
	return q
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
