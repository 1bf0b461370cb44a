package usecase

import (
	"strings"

	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

// categoryAll is the sentinel clients send to mean "no category filter".
const categoryAll = "all"

const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByTitle     = "title"
	SortByViews     = "views"
)

var sortColumns = map[string]string{
	"created_at": SortByCreatedAt,
	"createdat":  SortByCreatedAt,
	"updated_at": SortByUpdatedAt,
	"updatedat":  SortByUpdatedAt,
	"title":      SortByTitle,
	"views":      SortByViews,
}

type ListParams struct {
	Pagination pagination.Params
	Category   string
	Tag        string
	Search     string
	SortBy     string
	SortOrder  string
}

// BuildFilter translates request query parameters into the repository
// filter. Unknown sort fields fall back to creation time; the sort column
// is always taken from the whitelist, never from client input.
func BuildFilter(params ListParams) ListFilter {
	pag := params.Pagination.Normalize()

	category := strings.TrimSpace(params.Category)
	if strings.EqualFold(category, categoryAll) {
		category = ""
	}

	sortBy, ok := sortColumns[strings.ToLower(strings.TrimSpace(params.SortBy))]
	if !ok {
		sortBy = SortByCreatedAt
	}

	return ListFilter{
		Category: category,
		Tag:      strings.TrimSpace(params.Tag),
		Search:   strings.TrimSpace(params.Search),
		SortBy:   sortBy,
		SortDesc: !strings.EqualFold(strings.TrimSpace(params.SortOrder), "asc"),
		Limit:    pag.Limit,
		Offset:   pag.Offset(),
	}
}
