package types

// ListParams su parametri listinga: page/pageSize/search/sortBy/ascending.
type ListParams struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	Ascending bool   `json:"ascending"`
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pagination su metapodaci uz paginiranu listu.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	HasNext    bool   `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func NewPagination(total uint64, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize != 0 {
			totalPages++
		}
	}
	return Pagination{
		TotalCount:  total,
		TotalPages:  totalPages,
		Page:        page,
		PageSize:    pageSize,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
