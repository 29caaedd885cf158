package project

import "time"

// DemoProjects returns the demo project seed relative to now
func DemoProjects(now time.Time) []Project {
	return []Project{
		{
			ID:        "demo_1",
			Name:      "2BHK - Koramangala",
			Scope:     "2BHK",
			Address:   "12, 5th Cross, Koramangala, Bengaluru",
			Area:      "Living Room",
			Status:    "wip",
			Uploads:   []Upload{},
			CreatedAt: now.Add(-4 * 24 * time.Hour).UnixMilli(),
		},
		{
			ID:        "demo_2",
			Name:      "Villa - Whitefield",
			Scope:     "Commercial",
			Address:   "Plot 27, Palm Meadows, Whitefield, Bengaluru",
			Area:      "Dining",
			Status:    "renders_shared",
			Uploads:   []Upload{},
			CreatedAt: now.Add(-2 * 24 * time.Hour).UnixMilli(),
		},
	}
}

// DemoLinks returns the demo project-product link seed
func DemoLinks() []Link {
	return []Link{
		{ID: "pp_1", ProjectID: "demo_1", ProductID: "prod_1", Area: "Living Room"},
		{ID: "pp_2", ProjectID: "demo_1", ProductID: "prod_3", Area: "Living Room"},
		{ID: "pp_3", ProjectID: "demo_2", ProductID: "prod_2", Area: "Dining"},
	}
}
