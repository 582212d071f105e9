package response_models

// Meta carries the pagination contract shared by every list endpoint.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type PagedData struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

func NewMeta(total int64, page, limit int) Meta {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
