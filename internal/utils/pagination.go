package utils

// Pagination is the page-window model behind the pagination control.
// Every page number it exposes lies within [1, Total].
type Pagination struct {
	Current int   `json:"current"`
	Total   int   `json:"total"`
	Pages   []int `json:"pages"`

	HasPrev  bool `json:"hasPrev"`
	PrevPage int  `json:"prevPage"`
	HasNext  bool `json:"hasNext"`
	NextPage int  `json:"nextPage"`

	FirstPage int `json:"firstPage"`
	LastPage  int `json:"lastPage"`
}

// NewPagination builds block-style pagination: pages are shown in windows
// of size window and prev/next jump to the neighbouring block.
func NewPagination(current, total, window int) Pagination {
	if total < 1 {
		total = 1
	}
	if window < 1 {
		window = 1
	}
	current = ClampPage(current, total)

	start := ((current-1)/window)*window + 1
	end := start + window - 1
	if end > total {
		end = total
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	pg := Pagination{
		Current:   current,
		Total:     total,
		Pages:     pages,
		FirstPage: 1,
		LastPage:  total,
		PrevPage:  1,
		NextPage:  total,
	}
	if start > 1 {
		pg.HasPrev = true
		pg.PrevPage = start - 1
	}
	if end < total {
		pg.HasNext = true
		pg.NextPage = end + 1
	}
	return pg
}

// ClampPage keeps page within [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
