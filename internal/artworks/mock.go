package artworks

func f(v float64) *float64 { return &v }

// MockArtworks is the bundled dataset served when the Sheets integration is
// not configured, so local development still renders a full gallery.
func MockArtworks() []Artwork {
	return []Artwork{
		{
			ID:           "mock-b1",
			Name:         "Rolig Vildskab",
			Type:         TypePainting,
			Artist:       ArtistBoldsen,
			Dimensions:   "100x120 cm",
			Price:        12500,
			VatRate:      5,
			Images:       []Image{{URL: "https://picsum.photos/seed/rolig-vildskab/800/960", DataAiHint: "abstract painting"}},
			Videos:       []Video{},
			Status:       StatusAvailable,
			CreationDate: "2024-03-12",
			Materials:    "Akryl på lærred",
			Description:  "Abstrakt komposition i jordfarver.",
		},
		{
			ID:           "mock-b2",
			Name:         "Nordlys",
			Type:         TypePainting,
			Artist:       ArtistBoldsen,
			Dimensions:   "80x80 cm",
			Price:        8900,
			Discount:     f(10),
			VatRate:      5,
			Images:       []Image{{URL: "https://picsum.photos/seed/nordlys/800/800", DataAiHint: "green blue painting"}},
			Videos:       []Video{},
			Status:       StatusAvailable,
			CreationDate: "2023-11-02",
			Materials:    "Olie på lærred",
			AtGallery:    true,
			IsSecondary:  true,
		},
		{
			ID:           "mock-b3",
			Name:         "Havblik",
			Type:         TypeVaegkunst,
			Artist:       ArtistBoldsen,
			Dimensions:   "120x60 cm",
			Price:        15200,
			VatRate:      5,
			Images:       []Image{{URL: "https://picsum.photos/seed/havblik/1200/600", DataAiHint: "seascape wall art"}},
			Videos:       []Video{},
			Status:       StatusSold,
			CreationDate: "2024-01-20",
		},
		{
			ID:           "mock-z1",
			Name:         "Blå Krukke",
			Type:         TypeKeramik,
			Artist:       ArtistZenia,
			Dimensions:   "H 32 cm",
			Price:        2400,
			VatRate:      25,
			Height:       f(32),
			Diameter:     f(18),
			Weight:       f(2.1),
			Images:       []Image{{URL: "https://picsum.photos/seed/blaa-krukke/800/800", DataAiHint: "blue ceramic vase"}},
			Videos:       []Video{},
			Status:       StatusAvailable,
			CreationDate: "2024-02-07",
			Materials:    "Stentøj, blå glasur",
		},
		{
			ID:           "mock-z2",
			Name:         "Skål med Riller",
			Type:         TypeKeramik,
			Artist:       ArtistZenia,
			Dimensions:   "Ø 24 cm",
			Price:        1150,
			VatRate:      25,
			Diameter:     f(24),
			Images:       []Image{{URL: "https://picsum.photos/seed/skaal-riller/800/800", DataAiHint: "ceramic bowl"}},
			Videos:       []Video{},
			Status:       StatusAvailable,
			CreationDate: "2023-09-15",
			AtGallery:    true,
		},
		{
			ID:           "mock-z3",
			Name:         "Vase i Sandfarve",
			Type:         TypeKeramik,
			Artist:       ArtistZenia,
			Dimensions:   "H 26 cm",
			Price:        1890,
			VatRate:      25,
			Height:       f(26),
			Images:       []Image{{URL: "https://picsum.photos/seed/sand-vase/800/800", DataAiHint: "sand colored vase"}},
			Videos:       []Video{},
			Status:       StatusSold,
			CreationDate: "2024-05-01",
		},
	}
}
