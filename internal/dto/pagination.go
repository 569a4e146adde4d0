package dto

// PageParams defines the pagination and ordering query parameters shared by
// every list endpoint. SortBy is checked against a per-resource whitelist in
// the service layer.
type PageParams struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// MaxPageLimit caps how many rows one page may request.
const MaxPageLimit = 100

// Normalize clamps the parameters to usable values.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
}

// Offset converts page/limit to the row offset of the first result.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block carried by every list response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the metadata for a page of a result set.
// TotalPages is ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
