package models

// Pagination defaults and cap, matching the listing endpoints.
const (
	DefaultPerPage = 15
	MaxPerPage     = 50
)

// PageParams carries page/per_page values from the HTTP layer to the repos.
// Page is 1-indexed.
type PageParams struct {
	Page    int
	PerPage int
}

// NewPageParams clamps the requested values: page defaults to 1, per_page
// defaults to 15 and is capped at 50.
func NewPageParams(page, perPage int) PageParams {
	p := PageParams{Page: 1, PerPage: DefaultPerPage}
	if page >= 1 {
		p.Page = page
	}
	if perPage >= 1 {
		p.PerPage = perPage
		if p.PerPage > MaxPerPage {
			p.PerPage = MaxPerPage
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TripPage is one page of trip results plus pagination metadata.
type TripPage struct {
	Data    []Trip `json:"data"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// UserPage is one page of public user profiles plus pagination metadata.
type UserPage struct {
	Data    []PublicProfile `json:"data"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}
