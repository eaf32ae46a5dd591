package models

// PaginationQuery 分页参数，未同时提供 page_num 和 page_size 时返回全部数据
type PaginationQuery struct {
	PageNum  int `form:"page_num" json:"page_num" binding:"gte=0"`
	PageSize int `form:"page_size" json:"page_size" binding:"gte=0"`
}

type PaginationResult struct {
	Total    int64 `json:"total"`
	PageNum  int   `json:"page_num"`
	PageSize int   `json:"page_size"`
}

// Enabled 是否请求了分页
func (q PaginationQuery) Enabled() bool {
	return q.PageNum > 0 && q.PageSize > 0
}

// Offset 计算偏移量
func (q PaginationQuery) Offset() int {
	if !q.Enabled() {
		return 0
	}
	return (q.PageNum - 1) * q.PageSize
}

// Normalize 限制每页条数上限
func (q PaginationQuery) Normalize() PaginationQuery {
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	return q
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(total int64, pageNum, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}

// PageData 列表接口的统一返回结构
type PageData struct {
	List       interface{}       `json:"list"`
	Total      int64             `json:"total"`
	Pagination *PaginationResult `json:"pagination,omitempty"`
}
