package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// New normalizes page and pageSize; non-positive values fall back to the defaults.
func New(page, pageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// FromQuery reads page and pageSize from the query string. Unparsable values
// fall back to the defaults and pageSize is capped at maxPageSize.
func FromQuery(c *gin.Context, maxPageSize int) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		pageSize = DefaultPageSize
	}

	p := New(page, pageSize)
	if maxPageSize > 0 && p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) TotalPages(count int64) int64 {
	if p.PageSize < 1 {
		return 0
	}
	return (count + int64(p.PageSize) - 1) / int64(p.PageSize)
}
