package request

// PaginatedRequest selects one page of a listing. Unset or out-of-range
// values fall back to the first page of ten, capped at a hundred per page.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Limit returns the clamped page size for the storage query.
func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return 10
	case p.PerPage > 100:
		return 100
	}
	return p.PerPage
}

// Offset returns how many rows precede the requested page.
func (p PaginatedRequest) Offset() int {
	if p.Page < 2 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
