package model

// PageRequest は1始まりのページ番号 Number とページサイズ Size を表します。
type PageRequest struct {
	Number int
	Size   int
}

// Valid はページ番号とサイズがともに1以上かどうかを返します。
func (r PageRequest) Valid() bool {
	return r.Number >= 1 && r.Size >= 1
}

// Window は全件数 total に対するページの先頭位置を返します。
// 不正な要求や範囲外のページでは ok が false になります。
// 範囲の判定は (Number-1)*Size の計算より先に行います。
func (r PageRequest) Window(total int) (offset int, ok bool) {
	if !r.Valid() || total <= 0 {
		return 0, false
	}
	pages := total / r.Size
	if total%r.Size != 0 {
		pages++
	}
	if r.Number > pages {
		return 0, false
	}
	return (r.Number - 1) * r.Size, true
}

// Limit はページに含まれる最大件数を返します。
func (r PageRequest) Limit() int {
	return r.Size
}

// Page は順序付き結果の1ページ分と、結果全体の件数を保持します。
type Page[T any] struct {
	TotalRecords int `json:"totalRecords"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	Data         []T `json:"data"`
}

// NewPage は切り出し済みの data をページとして包みます。
// total はフィルタ後、切り出し前の件数です。
func NewPage[T any](data []T, total int, req PageRequest) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		TotalRecords: total,
		PageNumber:   req.Number,
		PageSize:     req.Size,
		Data:         data,
	}
}
