package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  Pagination
	}{
		{query: "", want: Pagination{Page: 1, PageSize: 10}},
		{query: "page=3&pageSize=5", want: Pagination{Page: 3, PageSize: 5}},
		{query: "page=abc&pageSize=-2", want: Pagination{Page: 1, PageSize: 10}},
		{query: "page=0&pageSize=0", want: Pagination{Page: 1, PageSize: 10}},
		{query: "page=2&pageSize=1000", want: Pagination{Page: 2, PageSize: 50}},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/boards?"+tt.query, nil)
		if got := FromQuery(c, 50); got != tt.want {
			t.Errorf("FromQuery(%q)=%+v want=%+v", tt.query, got, tt.want)
		}
	}
}

func TestPagination_OffsetAndTotalPages(t *testing.T) {
	p := New(3, 10)
	if p.Offset() != 20 || p.Limit() != 10 {
		t.Fatalf("offset=%d limit=%d", p.Offset(), p.Limit())
	}

	tests := []struct {
		count int64
		want  int64
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, tt := range tests {
		if got := p.TotalPages(tt.count); got != tt.want {
			t.Errorf("TotalPages(%d)=%d want=%d", tt.count, got, tt.want)
		}
	}
}
