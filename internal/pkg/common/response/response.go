package response

import (
	"net/url"
	"strconv"
)

// Response is the common JSON envelope for list and detail endpoints.
type Response struct {
	Count    *int    `json:"count,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Next     *string `json:"next,omitempty"`
	Results  any     `json:"results,omitempty"`
	Detail   string  `json:"detail,omitempty"`
}

// BuildPageLinks derives previous/next page URLs from the request URL by
// rewriting the page parameter. A link is nil when the page does not exist
// for the given total.
func BuildPageLinks(u *url.URL, page, pageSize, total int) (prev, next *string) {
	if u == nil || pageSize <= 0 {
		return nil, nil
	}

	link := func(p int) *string {
		cu := *u
		q := cu.Query()
		q.Set("page", strconv.Itoa(p))
		q.Set("page_size", strconv.Itoa(pageSize))
		cu.RawQuery = q.Encode()
		s := cu.String()
		return &s
	}

	if page > 1 {
		prev = link(page - 1)
	}
	if page*pageSize < total {
		next = link(page + 1)
	}
	return prev, next
}
