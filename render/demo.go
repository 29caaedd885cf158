package render

// DemoRenders returns the demo render seed: one render per demo project,
// one already approved and one with changes requested.
func DemoRenders() []Render {
	return []Render{
		{
			ID:        "ren_1",
			ImageURL:  "https://images.unsplash.com/photo-1514517220035-0001f84778f5?q=80&w=1600&auto=format&fit=crop",
			Status:    StatusChanges,
			ProjectID: "demo_1",
			Area:      "Living Room",
		},
		{
			ID:        "ren_2",
			ImageURL:  "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=1600&auto=format&fit=crop",
			Status:    StatusApproved,
			ProjectID: "demo_2",
			Area:      "Dining",
		},
	}
}
