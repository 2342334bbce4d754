package domain

import (
	"fmt"
	"math"
	"strings"
)

// Pagination defaults applied when a request omits or mangles its paging parameters.
const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// Direction is the ordering direction of a sort property.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order sorts by a single property.
type Order struct {
	Property  string    `json:"property"`
	Direction Direction `json:"direction"`
}

// Pageable describes which slice of a collection a caller wants.
// Page is zero-based.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset returns the number of records preceding the requested page.
// It saturates at math.MaxInt instead of overflowing.
func (p Pageable) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// PageOf returns a Pageable for page and size with no sort.
func PageOf(page, size int) Pageable {
	return Pageable{Page: page, Size: size}.Normalize(MaxPageSize)
}

// Normalize clamps page and size into range: negative pages become 0,
// non-positive sizes fall back to DefaultPageSize and sizes above maxSize are capped.
// Pages are capped so that Offset()+Size never overflows.
func (p Pageable) Normalize(maxSize int) Pageable {
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	if maxPage := math.MaxInt/p.Size - 1; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// ParseOrder parses a sort expression of the form "property[,asc|desc]".
// allowed restricts the accepted property names.
func ParseOrder(expr string, allowed ...string) (Order, error) {
	parts := strings.Split(expr, ",")
	property := strings.TrimSpace(parts[0])
	if property == "" {
		return Order{}, NewValidationError("sort", "sort property is required", ErrInvalidSort)
	}
	if len(allowed) > 0 && !containsFold(allowed, property) {
		return Order{}, NewValidationError("sort", fmt.Sprintf("unknown sort property %q", property), ErrInvalidSort)
	}

	order := Order{Property: strings.ToLower(property), Direction: Asc}
	if len(parts) > 2 {
		return Order{}, NewValidationError("sort", fmt.Sprintf("malformed sort expression %q", expr), ErrInvalidSort)
	}
	if len(parts) == 2 {
		switch strings.ToUpper(strings.TrimSpace(parts[1])) {
		case "", string(Asc):
		case string(Desc):
			order.Direction = Desc
		default:
			return Order{}, NewValidationError("sort", fmt.Sprintf("unknown sort direction %q", parts[1]), ErrInvalidSort)
		}
	}
	return order, nil
}

func containsFold(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// Page is a bounded slice of a larger ordered collection plus total-count metadata.
type Page[T any] struct {
	Content          []T     `json:"content"`
	TotalElements    int64   `json:"totalElements"`
	TotalPages       int     `json:"totalPages"`
	Size             int     `json:"size"`
	Number           int     `json:"number"`
	NumberOfElements int     `json:"numberOfElements"`
	First            bool    `json:"first"`
	Last             bool    `json:"last"`
	Empty            bool    `json:"empty"`
	Sort             []Order `json:"sort"`
}

// NewPage assembles a Page from the fetched slice, the request that produced it and the total count.
func NewPage[T any](content []T, pageable Pageable, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	sort := pageable.Sort
	if sort == nil {
		sort = []Order{}
	}

	totalPages := 0
	if pageable.Size > 0 {
		totalPages = int((total + int64(pageable.Size) - 1) / int64(pageable.Size))
	}

	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             pageable.Size,
		Number:           pageable.Page,
		NumberOfElements: len(content),
		First:            pageable.Page == 0,
		Last:             pageable.Page+1 >= totalPages,
		Empty:            len(content) == 0,
		Sort:             sort,
	}
}
