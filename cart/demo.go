package cart

// DemoLines returns the demo cart seed: three lines attributed to the two
// demo projects, matching the original presentation data.
func DemoLines() []Line {
	return []Line{
		{ID: "line_1", ProductID: "prod_1", Qty: 1, ProjectID: "demo_1", Area: "Living Room"},
		{ID: "line_2", ProductID: "prod_2", Qty: 2, ProjectID: "demo_2", Area: "Dining"},
		{ID: "line_3", ProductID: "prod_3", Qty: 1, ProjectID: "demo_1", Area: "Living Room"},
	}
}
