package cloudflare

import (
	"net/url"
	"strconv"
)

// ListDirection orders list results ascending or descending. It is a
// wrapped string so unknown future values pass through unchanged.
type ListDirection string

const (
	ListDirectionAsc  ListDirection = "asc"
	ListDirectionDesc ListDirection = "desc"
)

// ListOptions represents the filter object of a list request. Every field
// has a fixed wire name; unset fields never appear in the query string.
type ListOptions struct {
	Page      int            `yaml:"page,omitempty"`
	PerPage   int            `yaml:"per_page,omitempty"`
	Order     string         `yaml:"order,omitempty"`
	Direction ListDirection  `yaml:"direction,omitempty"`
	Name      string         `yaml:"name,omitempty"`
	Type      string         `yaml:"type,omitempty"`
	Content   string         `yaml:"content,omitempty"`
	Match     string         `yaml:"match,omitempty"`
	Search    string         `yaml:"search,omitempty"`
	Proxied   Optional[bool] `yaml:"proxied,omitempty"`
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(o.PerPage))
	}

	if o.Order != "" {
		values.Set("order", o.Order)
	}

	if o.Direction != "" {
		values.Set("direction", string(o.Direction))
	}

	if o.Name != "" {
		values.Set("name", o.Name)
	}

	if o.Type != "" {
		values.Set("type", o.Type)
	}

	if o.Content != "" {
		values.Set("content", o.Content)
	}

	if o.Match != "" {
		values.Set("match", o.Match)
	}

	if o.Search != "" {
		values.Set("search", o.Search)
	}

	if proxied, ok := o.Proxied.Value(); ok {
		values.Set("proxied", strconv.FormatBool(proxied))
	}

	return values
}

// Clone returns an independent copy, used by the pagination iterator to
// advance the page number while holding every other field constant.
func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return &ListOptions{}
	}

	clone := *o

	return &clone
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOptions) WithPerPage(perPage int) *ListOptions {
	o.PerPage = perPage

	return o
}

// WithOrder sets the field results are ordered by.
func (o *ListOptions) WithOrder(order string) *ListOptions {
	o.Order = order

	return o
}

// WithDirection sets the ordering direction.
func (o *ListOptions) WithDirection(direction ListDirection) *ListOptions {
	o.Direction = direction

	return o
}

// WithName filters by resource name.
func (o *ListOptions) WithName(name string) *ListOptions {
	o.Name = name

	return o
}

// WithType filters by record type.
func (o *ListOptions) WithType(recordType string) *ListOptions {
	o.Type = recordType

	return o
}

// WithContent filters by record content.
func (o *ListOptions) WithContent(content string) *ListOptions {
	o.Content = content

	return o
}

// WithMatch sets whether all or any filters must match.
func (o *ListOptions) WithMatch(match string) *ListOptions {
	o.Match = match

	return o
}

// WithSearch sets a free-text search term.
func (o *ListOptions) WithSearch(search string) *ListOptions {
	o.Search = search

	return o
}

// WithProxied filters by proxy status.
func (o *ListOptions) WithProxied(proxied bool) *ListOptions {
	o.Proxied = Set(proxied)

	return o
}
