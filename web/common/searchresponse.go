package common

type Pagination struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageCount int   `json:"pageCount"`
}

type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewSearchResponse(data interface{}, total int64, page, pageCount int) *SearchResponse {
	return &SearchResponse{
		Data: data,
		Pagination: Pagination{
			Total:     total,
			Page:      page,
			PageCount: pageCount,
		},
	}
}
