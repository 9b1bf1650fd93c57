package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"commission-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		p    access.Principal
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"client", access.Client{ID: 1}, http.StatusForbidden},
		{"artist", access.Artist{ID: 2, ArtistID: 9}, http.StatusForbidden},
		{"admin", access.Admin{ID: 3}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				if tt.p != nil {
					c.Set(access.ContextKey, tt.p)
				}
				c.Next()
			}, RequireRole("admin"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
