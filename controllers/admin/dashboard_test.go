package adminControllers

import (
	"testing"
	"time"

	"github.com/nicoxroll/digrazia-bros/models"
)

func TestMonthlyBuckets(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	sales := []models.Sale{
		{Price: 100, Date: day(2026, time.April, 15)},
		{Price: 40, Date: day(2026, time.April, 30)},
		{Price: 50, Date: day(2026, time.June, 2)},
		{Price: 25, Date: day(2026, time.August, 31)},
		{Price: 999, Date: day(2026, time.February, 1)}, // outside the window
	}

	// Aug 31: subtracting months from a month-end date must not skip
	// April and June, which have fewer than 31 days.
	got := monthlyBuckets(day(2026, time.August, 31), sales)

	wantLabels := []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}
	wantRevenue := []float64{0, 140, 0, 50, 0, 25}
	if len(got) != len(wantLabels) {
		t.Fatalf("expected %d buckets, got %d", len(wantLabels), len(got))
	}
	for i := range got {
		if got[i].Month != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, got[i].Month, wantLabels[i])
		}
		if got[i].Revenue != wantRevenue[i] {
			t.Errorf("bucket %d revenue = %v, want %v", i, got[i].Revenue, wantRevenue[i])
		}
	}

	seen := make(map[string]bool)
	for _, b := range got {
		if seen[b.Month] {
			t.Errorf("duplicate month label %q", b.Month)
		}
		seen[b.Month] = true
	}
}

func TestMonthlyBuckets_YearBoundary(t *testing.T) {
	sales := []models.Sale{
		{Price: 60, Date: time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)},
		{Price: 30, Date: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	got := monthlyBuckets(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), sales)

	wantLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i := range got {
		if got[i].Month != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, got[i].Month, wantLabels[i])
		}
	}
	if got[1].Revenue != 60 || got[3].Revenue != 30 {
		t.Errorf("revenue not bucketed across the year boundary: %+v", got)
	}
}
