package page

import (
	"assignment-track/biz/application/dto/basic"
	"assignment-track/biz/infrastructure/consts"
)

// ParsePageOpt 解析分页参数，缺省为第一页每页10条
func ParsePageOpt(p *basic.PaginationOptions) (page int64, pageSize int64) {
	page = int64(1)
	pageSize = consts.PageSize

	if p != nil {
		if p.Page != nil && *p.Page > 0 {
			page = *p.Page
		}
		if p.Limit != nil && *p.Limit > 0 {
			pageSize = *p.Limit
		}
	}
	return page, pageSize
}

// Build 根据总数计算分页元信息
func Build(page, pageSize, total int64) *basic.Pagination {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &basic.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
