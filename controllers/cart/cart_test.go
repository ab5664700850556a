package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/cart"
	"github.com/nicoxroll/digrazia-bros/catalog"
)

func newRouter(store *cart.Store, source catalog.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("session_id", "test-session") })

	r.GET("/cart", GetCart(store))
	r.POST("/cart", AddCartItem(store, source))
	r.PUT("/cart/:product_id", UpdateCartItem(store))
	r.DELETE("/cart/:product_id", RemoveCartItem(store))
	r.DELETE("/cart", ClearCart(store))
	return r
}

type cartResponse struct {
	Lines    []cart.Line `json:"lines"`
	Count    int         `json:"count"`
	Subtotal float64     `json:"subtotal"`
	OpenCart bool        `json:"open_cart"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp cartResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAddCartItem(t *testing.T) {
	store := cart.NewStore()
	r := newRouter(store, catalog.NewMemorySource())

	w, resp := doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if !resp.OpenCart {
		t.Error("expected open_cart=true after add")
	}
	if resp.Count != 1 || resp.Subtotal != 2450 {
		t.Errorf("count=%d subtotal=%f, want 1 and 2450", resp.Count, resp.Subtotal)
	}

	// Same product again merges into one line.
	_, resp = doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "1"})
	if len(resp.Lines) != 1 || resp.Lines[0].Quantity != 2 {
		t.Errorf("expected one line with quantity 2, got %+v", resp.Lines)
	}
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	r := newRouter(cart.NewStore(), catalog.NewMemorySource())

	w, _ := doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "ghost"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateCartItem(t *testing.T) {
	store := cart.NewStore()
	r := newRouter(store, catalog.NewMemorySource())
	doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "4"}) // lamp, 240

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "replace quantity", quantity: 3, want: 3},
		{name: "zero removes", quantity: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPut, "/cart/4", gin.H{"quantity": tt.quantity})
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if resp.Count != tt.want {
				t.Errorf("count=%d, want %d", resp.Count, tt.want)
			}
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	store := cart.NewStore()
	r := newRouter(store, catalog.NewMemorySource())
	doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "1"})
	doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": "2"})

	_, resp := doJSON(t, r, http.MethodDelete, "/cart/1", nil)
	if len(resp.Lines) != 1 || resp.Lines[0].ProductID != "2" {
		t.Errorf("expected only product 2 left, got %+v", resp.Lines)
	}

	_, resp = doJSON(t, r, http.MethodDelete, "/cart", nil)
	if resp.Count != 0 || resp.Subtotal != 0 {
		t.Errorf("expected empty cart after clear, got %+v", resp)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK || resp.Count != 0 {
		t.Errorf("expected empty cart on read, got status %d body %+v", w.Code, resp)
	}
}

func TestMissingSessionRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", GetCart(cart.NewStore()))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}
