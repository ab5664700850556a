package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/catalog"
	"github.com/nicoxroll/digrazia-bros/models"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	source := catalog.NewMemorySource()
	r.GET("/products", GetProducts(source))
	r.GET("/products/:id", GetProductByID(source))
	return r
}

func TestGetProducts(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		url  string
		code int
		want int
	}{
		{name: "full catalog", url: "/products", code: http.StatusOK, want: 6},
		{name: "filter by category", url: "/products?category=Bedroom", code: http.StatusOK, want: 1},
		{name: "search by name", url: "/products?q=table", code: http.StatusOK, want: 2},
		{name: "unknown category rejected", url: "/products?category=Garage", code: http.StatusBadRequest, want: 0},
		{name: "no matches is empty list", url: "/products?q=zeppelin", code: http.StatusOK, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, w.Code)
			}
			if tt.code != http.StatusOK {
				return
			}

			var products []models.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(products) != tt.want {
				t.Errorf("expected %d products, got %d", tt.want, len(products))
			}
		})
	}
}

func TestGetProductByID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.Name != "Ethereal Bed Frame" {
		t.Errorf("expected 'Ethereal Bed Frame', got %q", product.Name)
	}
	if product.Category != models.CategoryBedroom {
		t.Errorf("expected Bedroom category, got %q", product.Category)
	}
}

func TestGetProductByID_NotFound(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
