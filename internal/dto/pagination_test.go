package dto_test

import (
	"testing"

	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestPageParams_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		params        dto.PageParams
		wantPage      int
		wantLimit     int
		wantSortOrder string
	}{
		{
			name:          "zero values get defaults",
			params:        dto.PageParams{},
			wantPage:      1,
			wantLimit:     20,
			wantSortOrder: "asc",
		},
		{
			name:          "negative page is clamped",
			params:        dto.PageParams{Page: -5, Limit: 10},
			wantPage:      1,
			wantLimit:     10,
			wantSortOrder: "asc",
		},
		{
			name:          "limit above the cap is clamped",
			params:        dto.PageParams{Page: 2, Limit: 500},
			wantPage:      2,
			wantLimit:     dto.MaxPageLimit,
			wantSortOrder: "asc",
		},
		{
			name:          "limit at the cap is kept",
			params:        dto.PageParams{Page: 1, Limit: 100},
			wantPage:      1,
			wantLimit:     100,
			wantSortOrder: "asc",
		},
		{
			name:          "explicit sort order is kept",
			params:        dto.PageParams{Page: 3, Limit: 25, SortOrder: "desc"},
			wantPage:      3,
			wantLimit:     25,
			wantSortOrder: "desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Normalize()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantLimit, tt.params.Limit)
			assert.Equal(t, tt.wantSortOrder, tt.params.SortOrder)
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.PageParams{Page: 1, Limit: 20}.Offset(), "First page starts at row zero")
	assert.Equal(t, 20, dto.PageParams{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, dto.PageParams{Page: 10, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		limit          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{
			name:           "empty result set",
			total:          0,
			page:           1,
			limit:          20,
			wantTotalPages: 0,
			wantHasNext:    false,
			wantHasPrev:    false,
		},
		{
			name:           "partial last page rounds up",
			total:          23,
			page:           1,
			limit:          10,
			wantTotalPages: 3,
			wantHasNext:    true,
			wantHasPrev:    false,
		},
		{
			name:           "middle page has both neighbours",
			total:          23,
			page:           2,
			limit:          10,
			wantTotalPages: 3,
			wantHasNext:    true,
			wantHasPrev:    true,
		},
		{
			name:           "last page has no next",
			total:          23,
			page:           3,
			limit:          10,
			wantTotalPages: 3,
			wantHasNext:    false,
			wantHasPrev:    true,
		},
		{
			name:           "exact division does not add a page",
			total:          40,
			page:           2,
			limit:          20,
			wantTotalPages: 2,
			wantHasNext:    false,
			wantHasPrev:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.NewPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNext)
			assert.Equal(t, tt.wantHasPrev, p.HasPrev)
		})
	}
}
