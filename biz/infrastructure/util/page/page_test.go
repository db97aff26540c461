package page

import (
	"testing"

	"assignment-track/biz/application/dto/basic"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestParsePageOpt(t *testing.T) {
	tests := []struct {
		name         string
		opt          *basic.PaginationOptions
		wantPage     int64
		wantPageSize int64
	}{
		{"nil用缺省值", nil, 1, 10},
		{"空结构用缺省值", &basic.PaginationOptions{}, 1, 10},
		{"指定分页", &basic.PaginationOptions{Page: lo.ToPtr(int64(3)), Limit: lo.ToPtr(int64(20))}, 3, 20},
		{"非法值回退缺省", &basic.PaginationOptions{Page: lo.ToPtr(int64(0)), Limit: lo.ToPtr(int64(-5))}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ParsePageOpt(tt.opt)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name           string
		page           int64
		pageSize       int64
		total          int64
		wantTotalPages int64
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"空结果", 1, 10, 0, 0, false, false},
		{"单页", 1, 10, 5, 1, false, false},
		{"整除多页首页", 1, 10, 20, 2, true, false},
		{"非整除进位", 1, 10, 21, 3, true, false},
		{"中间页", 2, 10, 21, 3, true, true},
		{"末页", 3, 10, 21, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNext)
			assert.Equal(t, tt.wantHasPrev, p.HasPrev)
		})
	}
}
