package adminControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/sales"
)

func TestMapSaleStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "Fulfilled", want: "Fulfilled"},
		{input: "fulfilled", want: "Fulfilled"},
		{input: "PROCESSING", want: "Processing"},
		{input: "shipped", want: "Shipped"},
		{input: "commissioned", want: "Commissioned"},
		{input: "returned", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := mapSaleStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("mapSaleStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func seededLedger() *sales.MemoryLedger {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	return sales.NewMemoryLedger([]models.Sale{
		{ID: "1001", Customer: "Isabella Rossellini", Product: "Serene Cloud Sofa", Price: 2450, Date: day(12), Status: models.SaleStatusFulfilled},
		{ID: "1002", Customer: "Luca Guadagnino", Product: "Marble Nesting Tables", Price: 560, Date: day(10), Status: models.SaleStatusProcessing},
		{ID: "1003", Customer: "Monica Bellucci", Product: "Ethereal Bed Frame", Price: 1750, Date: day(8), Status: models.SaleStatusCommissioned},
		{ID: "1004", Customer: "Ennio Morricone", Product: "Rose Quartz Lamp", Price: 240, Date: day(5), Status: models.SaleStatusShipped},
		{ID: "1005", Customer: "Sofia Loren", Product: "Nordic Dining Table", Price: 1200, Date: day(2), Status: models.SaleStatusFulfilled},
		{ID: "1006", Customer: "Alain Delon", Product: "Minimalist Oak Desk", Price: 890, Date: day(1), Status: models.SaleStatusShipped},
		{ID: "1007", Customer: "Claudia Cardinale", Product: "Rose Quartz Lamp", Price: 240, Date: day(14), Status: models.SaleStatusFulfilled},
	})
}

type salesPage struct {
	Sales      []models.Sale `json:"sales"`
	Page       int           `json:"page"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
}

func getSales(t *testing.T, ledger sales.Ledger, url string) (*httptest.ResponseRecorder, salesPage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/sales", GetSales(ledger))

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var page salesPage
	json.Unmarshal(w.Body.Bytes(), &page)
	return w, page
}

func TestGetSales_Pagination(t *testing.T) {
	ledger := seededLedger()

	_, page := getSales(t, ledger, "/admin/sales")
	if page.Total != 7 || page.TotalPages != 2 {
		t.Errorf("total=%d total_pages=%d, want 7 and 2", page.Total, page.TotalPages)
	}
	if len(page.Sales) != 5 {
		t.Fatalf("expected 5 rows on page 1, got %d", len(page.Sales))
	}
	// Newest first.
	if page.Sales[0].ID != "1007" {
		t.Errorf("expected newest sale first, got %s", page.Sales[0].ID)
	}

	_, page = getSales(t, ledger, "/admin/sales?page=2")
	if len(page.Sales) != 2 || page.Page != 2 {
		t.Errorf("expected 2 rows on page 2, got %d (page %d)", len(page.Sales), page.Page)
	}

	// Page numbers below 1 clamp to the first page.
	_, page = getSales(t, ledger, "/admin/sales?page=0")
	if page.Page != 1 || len(page.Sales) != 5 {
		t.Errorf("expected clamp to page 1, got page %d with %d rows", page.Page, len(page.Sales))
	}

	// Past the last page the listing is empty, not an error.
	w, page := getSales(t, ledger, "/admin/sales?page=9")
	if w.Code != http.StatusOK || len(page.Sales) != 0 {
		t.Errorf("expected empty page 9, got status %d with %d rows", w.Code, len(page.Sales))
	}
}

func TestGetSales_Search(t *testing.T) {
	ledger := seededLedger()

	_, page := getSales(t, ledger, "/admin/sales?q=isabella")
	if page.Total != 1 || page.Sales[0].Customer != "Isabella Rossellini" {
		t.Errorf("case-insensitive customer search failed: %+v", page.Sales)
	}

	_, page = getSales(t, ledger, "/admin/sales?q=1004")
	if page.Total != 1 || page.Sales[0].ID != "1004" {
		t.Errorf("search by sale id failed: %+v", page.Sales)
	}

	_, page = getSales(t, ledger, "/admin/sales?q=nobody")
	if page.Total != 0 || len(page.Sales) != 0 {
		t.Errorf("expected no matches, got %+v", page.Sales)
	}
}

func TestGetSales_StatusFilter(t *testing.T) {
	ledger := seededLedger()

	_, page := getSales(t, ledger, "/admin/sales?status=Fulfilled")
	if page.Total != 3 {
		t.Errorf("expected 3 fulfilled sales, got %d", page.Total)
	}
	for _, s := range page.Sales {
		if s.Status != models.SaleStatusFulfilled {
			t.Errorf("unexpected status %q in filtered listing", s.Status)
		}
	}

	_, page = getSales(t, ledger, "/admin/sales?status=All")
	if page.Total != 7 {
		t.Errorf("expected status=All to list everything, got %d", page.Total)
	}

	w, _ := getSales(t, ledger, "/admin/sales?status=returned")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown status, got %d", w.Code)
	}
}
