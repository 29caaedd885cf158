package catalog

// Demo returns the seeded demo catalog: the three core products plus the
// extra listing products. Safe to extend without a backend.
func Demo() *Catalog {
	return New(demoProducts())
}

func demoProducts() []Product {
	return []Product{
		{
			ID:          "prod_1",
			Title:       "Linen Sofa 3-Seater",
			ImageURL:    "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?q=80&w=1200&auto=format&fit=crop",
			Price:       39999,
			Category:    "Living Room",
			Description: "Comfortable 3-seater linen fabric sofa with wooden legs and timeless design, perfect for modern living rooms.",
		},
		{
			ID:          "prod_2",
			Title:       "Pendant Light Brass",
			ImageURL:    "https://images.unsplash.com/photo-1540574163026-643ea20ade25?q=80&w=1200&auto=format&fit=crop",
			Price:       6999,
			Category:    "Lighting",
			Description: "Elegant brass pendant light with matte finish, ideal for dining or lounge spaces.",
		},
		{
			ID:          "prod_3",
			Title:       "Walnut Coffee Table",
			ImageURL:    "https://images.unsplash.com/photo-1615870216515-4f6a87c87fec?q=80&w=1200&auto=format&fit=crop",
			Price:       12999,
			Category:    "Furniture",
			Description: "Premium walnut veneer coffee table with minimal steel legs, sturdy, aesthetic, and functional.",
		},
		{
			ID:          "prod_101",
			Title:       "Walnut Lounge Chair",
			ImageURL:    "https://images.unsplash.com/photo-1549187774-b4e9b0445b41?w=800&auto=format&fit=crop",
			Price:       18990,
			Category:    "Furniture",
			Description: "Ergonomic lounge chair in walnut finish with brass legs.",
		},
		{
			ID:          "prod_102",
			Title:       "Brass Pendant Light",
			ImageURL:    "https://images.unsplash.com/photo-1503602642458-232111445657?w=800&auto=format&fit=crop",
			Price:       4990,
			Category:    "Lighting",
			Description: "Warm brass dome pendant, perfect for dining tables.",
		},
		{
			ID:          "prod_103",
			Title:       "Oak Study Desk",
			ImageURL:    "https://images.unsplash.com/photo-1493666438817-866a91353ca9?w=800&auto=format&fit=crop",
			Price:       12990,
			Category:    "Furniture",
			Description: "Minimal oak desk with cable grommet and soft radius corners.",
		},
		{
			ID:          "prod_104",
			Title:       "Neutral Area Rug",
			ImageURL:    "https://images.unsplash.com/photo-1540574163026-643ea20ade25?w=800&auto=format&fit=crop",
			Price:       5990,
			Category:    "Décor",
			Description: "Hand-tufted wool rug in beige/ivory palette.",
		},
	}
}
