package pagination

// 分页窗口上限，防止一次查询扫描过大
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params 分页参数
type Params struct {
	Page  int
	Limit int
}

// Normalize 修正非法分页参数（page >= 1，limit 非法回落默认、超限截断到上限）
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset 返回跳过的记录数
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page 分页结果封装
type Page struct {
	Docs        interface{} `json:"docs"`
	TotalDocs   int64       `json:"total_docs"`
	Limit       int         `json:"limit"`
	Page        int         `json:"page"`
	TotalPages  int64       `json:"total_pages"`
	HasNextPage bool        `json:"has_next_page"`
	HasPrevPage bool        `json:"has_prev_page"`
}

// NewPage 根据总数与窗口构造分页结果，total_pages 向上取整
func NewPage(docs interface{}, total int64, params Params) *Page {
	totalPages := (total + int64(params.Limit) - 1) / int64(params.Limit)

	return &Page{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       params.Limit,
		Page:        params.Page,
		TotalPages:  totalPages,
		HasNextPage: int64(params.Page) < totalPages,
		HasPrevPage: params.Page > 1,
	}
}

// IsEmpty 当前页没有任何匹配结果
func (p *Page) IsEmpty() bool {
	return p.TotalDocs == 0
}
