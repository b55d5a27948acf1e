package cloudflare

import "time"

// Envelope is the standard wrapper every JSON response body is nested
// inside. Success is true iff Errors is empty; list endpoints additionally
// carry ResultInfo.
type Envelope[T any] struct {
	Success    bool        `json:"success"`
	Errors     []APIError  `json:"errors"`
	Messages   []string    `json:"messages"`
	Result     T           `json:"result"`
	ResultInfo *ResultInfo `json:"result_info,omitempty"`
}

// ResultInfo represents the pagination metadata of a list envelope.
type ResultInfo struct {
	Page       int `json:"page"        yaml:"page"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Count      int `json:"count"       yaml:"count"`
	TotalCount int `json:"total_count" yaml:"total_count"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// LastPage reports whether this page terminates the sequence: either the
// page index reached total_pages or the page came back empty.
func (i *ResultInfo) LastPage() bool {
	if i == nil {
		return true
	}

	return i.Page >= i.TotalPages || i.Count == 0
}

// ListResponse holds one decoded page of a list endpoint.
type ListResponse[T any] struct {
	Items []T        `json:"result"      yaml:"result"`
	Info  ResultInfo `json:"result_info" yaml:"result_info"`
}

// Resource contains the fields shared by most API resources.
type Resource struct {
	ID         string    `json:"id"                    yaml:"id"`
	CreatedOn  time.Time `json:"created_on,omitzero"   yaml:"created_on,omitempty"`
	ModifiedOn time.Time `json:"modified_on,omitzero"  yaml:"modified_on,omitempty"`
}
