package utils

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ForwardQuery отбирает из запроса параметры, которые понимает бэкенд:
// search, sort, page/limit и фильтры вида filter[status]=new -> status=new.
func ForwardQuery(query url.Values) url.Values {
	out := url.Values{}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			out.Set(key[7:len(key)-1], values[0])
		}
	}

	if search := strings.TrimSpace(query.Get("search")); search != "" {
		out.Set("search", search)
	}
	if sort := query.Get("sort"); sort != "" {
		out.Set("sort", sort)
	}

	limit := uint64(DefaultLimit)
	if l, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil && l > 0 {
		limit = min(l, MaxLimit)
	}
	page := uint64(1)
	if p, err := strconv.ParseUint(query.Get("page"), 10, 64); err == nil && p > 0 {
		page = p
	}
	out.Set("limit", strconv.FormatUint(limit, 10))
	out.Set("page", strconv.FormatUint(page, 10))
	return out
}
