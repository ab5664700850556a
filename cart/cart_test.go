package cart

import (
	"reflect"
	"testing"
	"time"

	"github.com/nicoxroll/digrazia-bros/models"
)

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Piece " + id, Price: price, Image: "/uploads/" + id + ".webp"}
}

func TestAddItem_NoDuplicateLines(t *testing.T) {
	c := &Cart{}
	a := product("a", 100)
	b := product("b", 50)

	c.AddItem(a)
	c.AddItem(b)
	c.AddItem(a)
	c.AddItem(a)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	// Quantity equals the number of adds per id.
	if lines[0].ProductID != "a" || lines[0].Quantity != 3 {
		t.Errorf("expected line a with quantity 3, got %+v", lines[0])
	}
	if lines[1].ProductID != "b" || lines[1].Quantity != 1 {
		t.Errorf("expected line b with quantity 1, got %+v", lines[1])
	}
}

func TestAddItem_PreservesFirstAddOrder(t *testing.T) {
	c := &Cart{}
	for _, id := range []string{"x", "y", "z"} {
		c.AddItem(product(id, 10))
	}
	c.AddItem(product("x", 10)) // must not move x to the back

	var order []string
	for _, l := range c.Lines() {
		order = append(order, l.ProductID)
	}
	if !reflect.DeepEqual(order, []string{"x", "y", "z"}) {
		t.Errorf("expected insertion order [x y z], got %v", order)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantCount    int
		wantSubtotal float64
	}{
		{name: "replace value", quantity: 5, wantCount: 5, wantSubtotal: 500},
		{name: "zero removes line", quantity: 0, wantCount: 0, wantSubtotal: 0},
		{name: "negative removes line", quantity: -3, wantCount: 0, wantSubtotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{}
			c.AddItem(product("a", 100))
			c.AddItem(product("a", 100))

			c.SetQuantity("a", tt.quantity)

			if c.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", c.Count(), tt.wantCount)
			}
			if c.Subtotal() != tt.wantSubtotal {
				t.Errorf("subtotal = %f, want %f", c.Subtotal(), tt.wantSubtotal)
			}
		})
	}
}

func TestSetQuantity_UnknownIDIsNoOp(t *testing.T) {
	c := &Cart{}
	c.AddItem(product("a", 100))

	c.SetQuantity("ghost", 4)
	c.SetQuantity("ghost", 0)

	if c.Count() != 1 {
		t.Errorf("expected count 1 after no-op updates, got %d", c.Count())
	}
}

func TestSetQuantity_Idempotent(t *testing.T) {
	c := &Cart{}
	c.AddItem(product("a", 100))

	c.SetQuantity("a", 7)
	once := c.Snapshot()
	c.SetQuantity("a", 7)
	twice := c.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeated SetQuantity changed the cart: %+v vs %+v", once, twice)
	}
}

func TestDerivedTotals(t *testing.T) {
	c := &Cart{}
	a := product("a", 100)
	b := product("b", 50)

	c.AddItem(a)
	c.AddItem(a)
	c.AddItem(b)

	if c.Count() != 3 {
		t.Errorf("count = %d, want 3", c.Count())
	}
	if c.Subtotal() != 250 {
		t.Errorf("subtotal = %f, want 250", c.Subtotal())
	}

	c.SetQuantity("a", 0)

	if c.Count() != 1 {
		t.Errorf("count after removal = %d, want 1", c.Count())
	}
	if c.Subtotal() != 50 {
		t.Errorf("subtotal after removal = %f, want 50", c.Subtotal())
	}
}

func TestZeroPriceProductOccupiesLine(t *testing.T) {
	c := &Cart{}
	c.AddItem(product("swatch", 0))

	if c.Subtotal() != 0 {
		t.Errorf("subtotal = %f, want 0", c.Subtotal())
	}
	if len(c.Lines()) != 1 || c.Count() != 1 {
		t.Errorf("zero-price product should still hold a line, got %+v", c.Lines())
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.AddItem(product("a", 100))
	c.AddItem(product("b", 50))

	c.Clear()

	if c.Count() != 0 {
		t.Errorf("count after clear = %d, want 0", c.Count())
	}
	if c.Subtotal() != 0 {
		t.Errorf("subtotal after clear = %f, want 0", c.Subtotal())
	}
	if len(c.Lines()) != 0 {
		t.Errorf("expected no lines after clear, got %d", len(c.Lines()))
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c := &Cart{}
	c.AddItem(product("a", 100))

	snap := c.Snapshot()
	c.AddItem(product("b", 50))

	if len(snap.Lines) != 1 || snap.Count != 1 || snap.Subtotal != 100 {
		t.Errorf("snapshot mutated by later cart writes: %+v", snap)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore()

	s.Get("alice").AddItem(product("a", 100))
	s.Get("bob").AddItem(product("b", 50))
	s.Get("bob").AddItem(product("b", 50))

	if got := s.Get("alice").Count(); got != 1 {
		t.Errorf("alice count = %d, want 1", got)
	}
	if got := s.Get("bob").Count(); got != 2 {
		t.Errorf("bob count = %d, want 2", got)
	}

	s.Drop("bob")
	if got := s.Get("bob").Count(); got != 0 {
		t.Errorf("bob count after drop = %d, want 0", got)
	}
}

func TestStore_EvictIdle(t *testing.T) {
	s := NewStore()
	s.Get("stale").AddItem(product("a", 10))
	s.Get("fresh").AddItem(product("b", 20))

	s.entries["stale"].touched = time.Now().Add(-25 * time.Hour)

	if n := s.EvictIdle(24 * time.Hour); n != 1 {
		t.Errorf("evicted %d carts, want 1", n)
	}
	if got := s.Get("stale").Count(); got != 0 {
		t.Errorf("stale cart survived eviction with count %d", got)
	}
	if got := s.Get("fresh").Count(); got != 1 {
		t.Errorf("fresh cart lost, count %d, want 1", got)
	}

	// A touch through With resets the idle clock.
	s.entries["fresh"].touched = time.Now().Add(-25 * time.Hour)
	s.With("fresh", func(*Cart) {})
	if n := s.EvictIdle(24 * time.Hour); n != 0 {
		t.Errorf("evicted %d carts after touch, want 0", n)
	}
}

func TestStore_ConcurrentWith(t *testing.T) {
	s := NewStore()
	p := product("a", 10)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				s.With("sid", func(c *Cart) { c.AddItem(p) })
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if got := s.Get("sid").Count(); got != 800 {
		t.Errorf("count = %d, want 800", got)
	}
}
