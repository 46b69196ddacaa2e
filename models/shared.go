package models

// PageInfo is the pagination envelope returned by listing endpoints.
type PageInfo struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPageInfo derives the full envelope from the effective page, limit and
// total row count.
func NewPageInfo(page, limit int, total int64) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

// ClassListResponse is the paginated class listing shape.
type ClassListResponse struct {
	Data       []Class  `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

// StudentListResponse is the paginated student listing shape.
type StudentListResponse struct {
	Data       []Student `json:"data"`
	Pagination PageInfo  `json:"pagination"`
}
