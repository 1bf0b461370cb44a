package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   pagination.Params
		want pagination.Params
	}{
		{"zero values get defaults", pagination.Params{}, pagination.Params{Page: 1, Limit: 10}},
		{"negative page", pagination.Params{Page: -3, Limit: 5}, pagination.Params{Page: 1, Limit: 5}},
		{"limit capped", pagination.Params{Page: 2, Limit: 500}, pagination.Params{Page: 2, Limit: 100}},
		{"valid passes through", pagination.Params{Page: 4, Limit: 25}, pagination.Params{Page: 4, Limit: 25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 3, Limit: 10}.Offset())
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  pagination.Meta
	}{
		{"first of three pages", 1, 10, 21, pagination.Meta{Page: 1, TotalPages: 3, Total: 21, HasNext: true, HasPrev: false}},
		{"middle page", 2, 10, 21, pagination.Meta{Page: 2, TotalPages: 3, Total: 21, HasNext: true, HasPrev: true}},
		{"last page", 3, 10, 21, pagination.Meta{Page: 3, TotalPages: 3, Total: 21, HasNext: false, HasPrev: true}},
		{"exact fit", 2, 10, 20, pagination.Meta{Page: 2, TotalPages: 2, Total: 20, HasNext: false, HasPrev: true}},
		{"empty", 1, 10, 0, pagination.Meta{Page: 1, TotalPages: 0, Total: 0, HasNext: false, HasPrev: false}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := pagination.NewMeta(pagination.Params{Page: tc.page, Limit: tc.limit}, tc.total)
			assert.Equal(t, tc.want, meta)
		})
	}
}
