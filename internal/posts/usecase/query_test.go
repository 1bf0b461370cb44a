package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
)

func TestBuildFilterDefaults(t *testing.T) {
	filter := usecase.BuildFilter(usecase.ListParams{})

	assert.Equal(t, usecase.ListFilter{
		SortBy:   usecase.SortByCreatedAt,
		SortDesc: true,
		Limit:    10,
		Offset:   0,
	}, filter)
}

func TestBuildFilterCategorySentinel(t *testing.T) {
	for _, sentinel := range []string{"all", "All", "ALL", "  all  ", ""} {
		filter := usecase.BuildFilter(usecase.ListParams{Category: sentinel})
		assert.Empty(t, filter.Category, "category %q must not filter", sentinel)
	}

	filter := usecase.BuildFilter(usecase.ListParams{Category: "Technology"})
	assert.Equal(t, "Technology", filter.Category)
}

func TestBuildFilterSortWhitelist(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"views", usecase.SortByViews},
		{"title", usecase.SortByTitle},
		{"createdAt", usecase.SortByCreatedAt},
		{"updated_at", usecase.SortByUpdatedAt},
		{"", usecase.SortByCreatedAt},
		{"views; DROP TABLE posts", usecase.SortByCreatedAt},
		{"author_id", usecase.SortByCreatedAt},
	}

	for _, tc := range tests {
		filter := usecase.BuildFilter(usecase.ListParams{SortBy: tc.sortBy})
		assert.Equal(t, tc.want, filter.SortBy, "sortBy %q", tc.sortBy)
	}
}

func TestBuildFilterSortOrder(t *testing.T) {
	assert.False(t, usecase.BuildFilter(usecase.ListParams{SortOrder: "asc"}).SortDesc)
	assert.False(t, usecase.BuildFilter(usecase.ListParams{SortOrder: "ASC"}).SortDesc)
	assert.True(t, usecase.BuildFilter(usecase.ListParams{SortOrder: "desc"}).SortDesc)
	assert.True(t, usecase.BuildFilter(usecase.ListParams{SortOrder: ""}).SortDesc)
	assert.True(t, usecase.BuildFilter(usecase.ListParams{SortOrder: "sideways"}).SortDesc)
}

func TestBuildFilterPagination(t *testing.T) {
	filter := usecase.BuildFilter(usecase.ListParams{
		Pagination: pagination.Params{Page: 3, Limit: 20},
	})

	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 40, filter.Offset)
}
