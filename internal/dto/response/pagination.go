package response

import (
	"real-estate-backend/pkg/utils"
)

// PageResponse is the listing envelope the portal frontend consumes.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPageResponse[T any](data []T, page, pageSize int, total int64) *PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, pageSize),
	}
}
