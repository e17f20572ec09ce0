package dto

type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
	SortBy   string `query:"sort_by"`
}

type PaginationMetadata struct {
	TotalCount  uint64 `json:"total_count"`
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	TotalPages  int    `json:"total_pages"`
	HasNextPage bool   `json:"has_next_page"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
