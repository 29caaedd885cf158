package cart

import (
	"context"
	"testing"

	"github.com/designandcart-afk/designandcart/catalog"
	"github.com/designandcart-afk/designandcart/core"
)

func newTestStore(t *testing.T) (*Store, core.Storage) {
	t.Helper()
	storage := core.NewMemoryStorage()
	store := NewStore(StoreOptions{Storage: storage})
	return store, storage
}

func TestStore_Load_Empty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Load() on fresh storage = %d lines, want 0", len(lines))
	}
}

func TestStore_Add(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	line, err := store.Add(ctx, "prod_1", 2, "demo_1", "Living Room")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if line.ID == "" {
		t.Error("Add() returned line with empty ID")
	}
	if line.Qty != 2 {
		t.Errorf("Add() qty = %d, want 2", line.Qty)
	}

	// No dedup by product: the same product added again creates a
	// separate line, e.g. for a different project area.
	second, err := store.Add(ctx, "prod_1", 1, "demo_2", "Dining")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if second.ID == line.ID {
		t.Error("Add() reused a line ID")
	}

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("Load() = %d lines, want 2", len(lines))
	}
}

func TestStore_Add_FloorsQty(t *testing.T) {
	store, _ := newTestStore(t)

	line, err := store.Add(context.Background(), "prod_1", -3, "", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if line.Qty != 1 {
		t.Errorf("Add() with qty -3 produced qty %d, want 1", line.Qty)
	}
}

func TestStore_SetQty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	line, err := store.Add(ctx, "prod_1", 2, "", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name    string
		delta   int
		wantQty int
	}{
		{name: "increment", delta: 1, wantQty: 3},
		{name: "decrement", delta: -2, wantQty: 1},
		{name: "floors at one", delta: -5, wantQty: 1},
		{name: "recovers from floor", delta: 4, wantQty: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SetQty(ctx, line.ID, tt.delta); err != nil {
				t.Fatalf("SetQty() error = %v", err)
			}
			lines, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if lines[0].Qty != tt.wantQty {
				t.Errorf("qty after delta %d = %d, want %d", tt.delta, lines[0].Qty, tt.wantQty)
			}
		})
	}
}

func TestStore_SetQty_UnknownLineIsNoOp(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Add(ctx, "prod_1", 2, "", ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	before, _ := storage.Get(ctx, Key)

	if err := store.SetQty(ctx, "nonexistent-id", 5); err != nil {
		t.Errorf("SetQty() on unknown line error = %v, want nil", err)
	}

	after, _ := storage.Get(ctx, Key)
	if before != after {
		t.Error("SetQty() on unknown line must leave the persisted blob unchanged")
	}
}

func TestStore_Remove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, _ := store.Add(ctx, "prod_1", 1, "", "")
	second, _ := store.Add(ctx, "prod_2", 2, "", "")

	if err := store.Remove(ctx, first.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Load() after Remove() = %d lines, want 1", len(lines))
	}
	if lines[0].ID != second.ID {
		t.Errorf("surviving line = %q, want %q", lines[0].ID, second.ID)
	}
}

func TestStore_Remove_UnknownLineIsNoOp(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Add(ctx, "prod_1", 1, "", ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	before, _ := storage.Get(ctx, Key)

	if err := store.Remove(ctx, "nonexistent-id"); err != nil {
		t.Errorf("Remove() on unknown line error = %v, want nil", err)
	}

	// Byte-for-byte unchanged
	after, _ := storage.Get(ctx, Key)
	if before != after {
		t.Error("Remove() on unknown line must leave the persisted blob unchanged")
	}
}

func TestStore_Clear(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "prod_1", 1, "", "")
	store.Add(ctx, "prod_2", 1, "", "")

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Load() after Clear() = %d lines, want 0", len(lines))
	}

	// Clear persists immediately as an empty collection, not a deletion
	blob, _ := storage.Get(ctx, Key)
	if blob != "[]" {
		t.Errorf("persisted blob after Clear() = %q, want []", blob)
	}
}

func TestStore_SeedIfEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, DemoLines()); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("seeded cart = %d lines, want 3", len(lines))
	}

	// Idempotent: a second seed must not duplicate or replace
	if err := store.SeedIfEmpty(ctx, DemoLines()); err != nil {
		t.Fatalf("second SeedIfEmpty() error = %v", err)
	}
	lines, _ = store.Load(ctx)
	if len(lines) != 3 {
		t.Errorf("cart after second seed = %d lines, want 3", len(lines))
	}

	// A cart the user has since modified is also left alone
	if err := store.Remove(ctx, lines[0].ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := store.SeedIfEmpty(ctx, DemoLines()); err != nil {
		t.Fatalf("third SeedIfEmpty() error = %v", err)
	}
	lines, _ = store.Load(ctx)
	if len(lines) != 2 {
		t.Errorf("cart after seed on modified cart = %d lines, want 2", len(lines))
	}
}

func TestStore_SeedIfEmpty_FiresAfterClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "prod_1", 1, "", "")
	store.Clear(ctx)

	// Absence is detected as "missing or empty", matching the original
	// app's check for a missing key or a bare "[]"
	if err := store.SeedIfEmpty(ctx, DemoLines()); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}
	lines, _ := store.Load(ctx)
	if len(lines) != 3 {
		t.Errorf("cart after seed on cleared cart = %d lines, want 3", len(lines))
	}
}

func TestSubtotal(t *testing.T) {
	c := catalog.Demo()

	tests := []struct {
		name  string
		lines []Line
		want  int64
	}{
		{
			name:  "empty cart",
			lines: nil,
			want:  0,
		},
		{
			name:  "single line",
			lines: []Line{{ID: "l1", ProductID: "prod_1", Qty: 1}},
			want:  39999,
		},
		{
			name: "quantities multiply",
			lines: []Line{
				{ID: "l1", ProductID: "prod_1", Qty: 1},
				{ID: "l2", ProductID: "prod_2", Qty: 2},
			},
			want: 39999 + 2*6999,
		},
		{
			name: "unresolvable product contributes zero",
			lines: []Line{
				{ID: "l1", ProductID: "prod_1", Qty: 1},
				{ID: "l2", ProductID: "prod_404", Qty: 3},
			},
			want: 39999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.lines, c); got != tt.want {
				t.Errorf("Subtotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Subtotal only counts surviving lines across a mutation sequence
func TestSubtotal_TracksMutations(t *testing.T) {
	store, _ := newTestStore(t)
	c := catalog.Demo()
	ctx := context.Background()

	sofa, _ := store.Add(ctx, "prod_1", 1, "", "")
	light, _ := store.Add(ctx, "prod_2", 2, "", "")

	lines, _ := store.Load(ctx)
	if got := Subtotal(lines, c); got != 39999+2*6999 {
		t.Errorf("Subtotal() = %d, want %d", got, 39999+2*6999)
	}

	store.SetQty(ctx, light.ID, -1)
	lines, _ = store.Load(ctx)
	if got := Subtotal(lines, c); got != 39999+6999 {
		t.Errorf("Subtotal() after SetQty = %d, want %d", got, 39999+6999)
	}

	store.Remove(ctx, sofa.ID)
	lines, _ = store.Load(ctx)
	if got := Subtotal(lines, c); got != 6999 {
		t.Errorf("Subtotal() after Remove = %d, want %d", got, 6999)
	}
}

func TestStore_Load_CorruptBlob(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	storage.Set(ctx, Key, "{not json")

	_, err := store.Load(ctx)
	if err == nil {
		t.Fatal("Load() on corrupt blob should fail")
	}
	if !core.IsCorruptRecord(err) {
		t.Errorf("Load() error = %v, want corrupt-record kind", err)
	}
}
