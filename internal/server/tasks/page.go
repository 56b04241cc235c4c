package tasks

import "taskkeeper/internal/common"

// Sort orders accepted by list queries.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortColumns maps exposed sort field names to their table columns.
// Anything not listed here is rejected before it reaches SQL.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"endDate":     "end_date",
	"state":       "state",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// ListQuery describes one page of an owner-scoped task listing.
type ListQuery struct {
	Page  int
	Size  int
	Sort  string
	Order string
}

// DefaultListQuery mirrors the query parameter defaults of the HTTP surface.
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 0, Size: 5, Sort: "title", Order: OrderAsc}
}

// Validate checks the query bounds and resolves the sort column.
func (q ListQuery) Validate() (column string, err error) {
	if q.Size <= 0 {
		return "", common.ErrorInvalidPageSize
	}
	if q.Page < 0 {
		return "", common.FieldErrors{}.Add("page", "must not be negative")
	}
	if q.Order != OrderAsc && q.Order != OrderDesc {
		return "", common.FieldErrors{}.Add("order", "must be asc or desc")
	}
	column, ok := sortColumns[q.Sort]
	if !ok {
		return "", common.ErrorInvalidSortField
	}
	return column, nil
}

// PageInfo carries the pagination totals of a listing.
type PageInfo struct {
	Count int `json:"count"`
	Pages int `json:"pages"`
}

// Page is one computed view over the owner's tasks. It is derived per
// query and never cached.
type Page struct {
	Results []*Task  `json:"results"`
	Info    PageInfo `json:"info"`
}
