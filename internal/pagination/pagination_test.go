package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lsantos-dev/moneta/internal/pagination"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "Empty", raw: "", want: 1},
		{name: "Garbage", raw: "abc", want: 1},
		{name: "Zero", raw: "0", want: 1},
		{name: "Negative", raw: "-3", want: 1},
		{name: "First", raw: "1", want: 1},
		{name: "Fifth", raw: "5", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.ParsePage(tt.raw))
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantLimit  int
		wantOffset int
	}{
		{name: "FirstPage", page: 1, wantLimit: 20, wantOffset: 0},
		{name: "SecondPage", page: 2, wantLimit: 20, wantOffset: 20},
		{name: "TenthPage", page: 10, wantLimit: 20, wantOffset: 180},
		{name: "NonPositiveFallsBack", page: 0, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pagination.Window(tt.page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
