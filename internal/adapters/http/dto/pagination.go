package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"slices"
)

// Page sizes for note listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest is the paging part of a listing query string.
type PaginationRequest struct {
	// Cursor is the nextCursor of the previous page; empty for the first page.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// PageSize is Limit clamped to 1..MaxPageSize, DefaultPageSize when unset.
func (p *PaginationRequest) PageSize() int {
	if p.Limit <= 0 {
		return DefaultPageSize
	}

	return min(p.Limit, MaxPageSize)
}

// PaginatedResponse is a page of items.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
	Total      int    `json:"total"`
}

// Cursor marks the last note number a page served. Note numbers shift when
// notes are deleted, so a cursor is a position, not an identity.
type Cursor struct {
	After int `json:"a"`
}

// String encodes the cursor for a nextCursor field.
func (c Cursor) String() string {
	raw, _ := json.Marshal(c) //nolint:errchkjson // one int field
	return base64.URLEncoding.EncodeToString(raw)
}

// ParseCursor reverses Cursor.String. The empty string is the zero cursor.
func ParseCursor(s string) (Cursor, error) {
	var c Cursor

	if s == "" {
		return c, nil
	}

	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil || json.Unmarshal(raw, &c) != nil || c.After < 0 {
		return Cursor{}, ErrInvalidCursor
	}

	return c, nil
}

// Paginate returns the page of items following req's cursor. number gives the
// note number of an item; items must be in ascending number order.
func Paginate[T any](items []T, req *PaginationRequest, number func(T) int) (*PaginatedResponse[T], error) {
	cursor, err := ParseCursor(req.Cursor)
	if err != nil {
		return nil, err
	}

	rest := items
	if cursor.After > 0 {
		start := slices.IndexFunc(items, func(it T) bool { return number(it) > cursor.After })
		if start < 0 {
			start = len(items)
		}

		rest = items[start:]
	}

	size := req.PageSize()
	resp := &PaginatedResponse[T]{
		Items:   make([]T, 0, min(size, len(rest))),
		HasMore: len(rest) > size,
		Total:   len(items),
	}
	resp.Items = append(resp.Items, rest[:min(size, len(rest))]...)

	if resp.HasMore {
		resp.NextCursor = Cursor{After: number(resp.Items[len(resp.Items)-1])}.String()
	}

	return resp, nil
}
