package catalog

import "testing"

func TestCatalog_ByID(t *testing.T) {
	c := Demo()

	p, ok := c.ByID("prod_1")
	if !ok {
		t.Fatal("ByID(prod_1) not found in demo catalog")
	}
	if p.Title != "Linen Sofa 3-Seater" {
		t.Errorf("Title = %q, want Linen Sofa 3-Seater", p.Title)
	}
	if p.Price != 39999 {
		t.Errorf("Price = %d, want 39999", p.Price)
	}

	if _, ok := c.ByID("prod_404"); ok {
		t.Error("ByID(prod_404) = ok, want not found")
	}
}

func TestCatalog_DemoResolvesSeedReferences(t *testing.T) {
	c := Demo()

	// Every product referenced by the demo cart and order seeds must
	// resolve, or seeded carts would display holes.
	for _, id := range []string{"prod_1", "prod_2", "prod_3"} {
		if _, ok := c.ByID(id); !ok {
			t.Errorf("demo catalog missing %s", id)
		}
	}
}

func TestNew_DuplicateIDsFirstWins(t *testing.T) {
	c := New([]Product{
		{ID: "p1", Title: "first", Price: 100},
		{ID: "p1", Title: "second", Price: 200},
		{ID: "p2", Title: "other", Price: 300},
	})

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	p, _ := c.ByID("p1")
	if p.Title != "first" {
		t.Errorf("duplicate ID resolved to %q, want first occurrence", p.Title)
	}
}

func TestCatalog_ProductsIsACopy(t *testing.T) {
	c := Demo()

	products := c.Products()
	products[0].Price = 1

	p, _ := c.ByID(products[0].ID)
	if p.Price == 1 {
		t.Error("mutating Products() result must not alter the catalog")
	}
}

func TestCatalog_Categories(t *testing.T) {
	c := New([]Product{
		{ID: "p1", Category: "Lighting"},
		{ID: "p2", Category: "Furniture"},
		{ID: "p3", Category: "Lighting"},
		{ID: "p4"},
	})

	got := c.Categories()
	want := []string{"Lighting", "Furniture"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := Demo()

	tests := []struct {
		name     string
		category string
		query    string
		wantIDs  []string
	}{
		{
			name:     "category only",
			category: "Lighting",
			wantIDs:  []string{"prod_2", "prod_102"},
		},
		{
			name:    "query matches title case-insensitively",
			query:   "walnut",
			wantIDs: []string{"prod_3", "prod_101"},
		},
		{
			name:     "category and query",
			category: "Furniture",
			query:    "desk",
			wantIDs:  []string{"prod_103"},
		},
		{
			name:    "no match",
			query:   "chandelier",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(tt.category, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Filter()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
