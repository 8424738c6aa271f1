package prints

// FrameOption is one of up to three framing choices for a print, each with
// its own product photo and price.
type FrameOption struct {
	ID          string  `json:"id"` // plain, black_frame, oak_frame
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type GalleryImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ArtPrint is a static catalog entry. The catalog is edited as a whole list;
// there is no per-item patch.
type ArtPrint struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Size          string         `json:"size"`
	Description   string         `json:"description"`
	FrameOptions  []FrameOption  `json:"frameOptions"`
	GalleryImages []GalleryImage `json:"galleryImages"`
}
