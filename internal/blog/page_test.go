package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                          string
		total, number, size, limit    int
		wantErr                       bool
		wantTotal, wantPages, wantLen int
		wantOffset                    int
	}{
		{name: "empty first page", total: 0, number: 1, size: 10, wantTotal: 0, wantPages: 1, wantLen: 0},
		{name: "empty second page", total: 0, number: 2, size: 10, wantErr: true},
		{name: "page zero", total: 5, number: 0, size: 10, wantErr: true},
		{name: "negative page", total: 5, number: -1, size: 10, wantErr: true},
		{name: "single page", total: 5, number: 1, size: 10, wantTotal: 5, wantPages: 1, wantLen: 5},
		{name: "exact pages", total: 20, number: 2, size: 10, wantTotal: 20, wantPages: 2, wantLen: 10, wantOffset: 10},
		{name: "last partial page", total: 25, number: 3, size: 10, wantTotal: 25, wantPages: 3, wantLen: 5, wantOffset: 20},
		{name: "beyond last page", total: 25, number: 4, size: 10, wantErr: true},
		{name: "limit truncates before paging", total: 25, number: 1, size: 10, limit: 5, wantTotal: 5, wantPages: 1, wantLen: 5},
		{name: "limit removes later pages", total: 25, number: 2, size: 10, limit: 5, wantErr: true},
		{name: "limit larger than total", total: 3, number: 1, size: 10, limit: 5, wantTotal: 3, wantPages: 1, wantLen: 3},
		{name: "limit across pages", total: 40, number: 2, size: 10, limit: 15, wantTotal: 15, wantPages: 2, wantLen: 5, wantOffset: 10},
		{name: "default size", total: 11, number: 2, size: 0, wantTotal: 11, wantPages: 2, wantLen: 1, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(tt.total, tt.number, tt.size, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.number, page.Number)
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.wantPages, page.NumPages)
			assert.Equal(t, tt.wantLen, page.Len())
			assert.Equal(t, tt.wantOffset, page.Offset())
		})
	}
}

func TestPage_Neighbours(t *testing.T) {
	page, err := Paginate(25, 2, 10, 0)
	require.NoError(t, err)

	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())

	last, err := Paginate(25, 3, 10, 0)
	require.NoError(t, err)
	assert.False(t, last.HasNext())
}
