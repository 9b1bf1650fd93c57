package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, DefaultPageSize},
		{"?page=3&page_size=10", 3, 10},
		{"?page=0&page_size=-4", 1, DefaultPageSize},
		{"?page=abc&page_size=1000", 1, MaxPageSize},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/commissions"+tt.query, nil)

		page, size := Params(c)
		if page != tt.page || size != tt.pageSize {
			t.Errorf("Params(%q) = %d, %d; want %d, %d", tt.query, page, size, tt.page, tt.pageSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(0, 20); got != 0 {
		t.Fatalf("TotalPages(0) = %d", got)
	}
	if got := TotalPages(41, 20); got != 3 {
		t.Fatalf("TotalPages(41, 20) = %d", got)
	}
	if got := TotalPages(40, 20); got != 2 {
		t.Fatalf("TotalPages(40, 20) = %d", got)
	}
}
