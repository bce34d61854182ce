package handlers

import (
	"strings"
)

const (
	maxPageSize      = 100
	projectPageSize  = 12
	inquiryPageSize  = 10
	genreSearchLimit = 200
	maxGenreLimit    = 1000
)

// ErrorResponse is the common error envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListResponse is the common paginated list envelope. Total is the
// exact count of rows matching the filters, independent of the slice
// returned.
type ListResponse struct {
	Items    interface{} `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int64       `json:"total"`
}

// paginate clamps page to >=1 and pageSize to [1,100] (falling back to
// def when unset) and returns the inclusive row range for PostgREST.
func paginate(page, pageSize, def int) (p, size, from, to int) {
	p = page
	if p < 1 {
		p = 1
	}
	size = pageSize
	if size < 1 {
		size = def
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	from = (p - 1) * size
	to = from + size - 1
	return p, size, from, to
}

// clampLimit bounds a raw limit parameter to [1,max], substituting def
// when the value is unset or non-positive.
func clampLimit(limit, def, max int) int {
	if limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// normalizeGenreNames trims incoming names, drops empties and
// deduplicates while keeping first-seen order.
func normalizeGenreNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
