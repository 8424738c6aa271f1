package artworks

type Artist string

const (
	ArtistBoldsen Artist = "boldsen"
	ArtistZenia   Artist = "zenia"
)

type Type string

const (
	TypePainting  Type = "painting"
	TypeKeramik   Type = "keramik"
	TypeVaegkunst Type = "vægkunst"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
)

type Image struct {
	URL        string `json:"url"`
	DataAiHint string `json:"dataAiHint,omitempty"`
}

type Video struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Artwork is one row of an artist's spreadsheet. Rows are created and deleted
// by the artists directly in the sheet; this service only reads them and
// patches individual cells.
type Artwork struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   Type   `json:"type"`
	Artist Artist `json:"artist"`

	Dimensions string   `json:"dimensions,omitempty"`
	Price      float64  `json:"price"`
	Discount   *float64 `json:"discount,omitempty"`
	VatRate    float64  `json:"vatRate"`

	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Diameter *float64 `json:"diameter,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`

	Images []Image `json:"images"`
	Videos []Video `json:"videos"`

	// PrimaryImageIndex must index into Images when Images is non-empty.
	PrimaryImageIndex int `json:"primaryImageIndex"`

	Status       Status `json:"status"`
	CreationDate string `json:"creationDate"`

	Materials     string `json:"materials,omitempty"`
	Description   string `json:"description,omitempty"`
	AtGallery     bool   `json:"atGallery"`
	IsSecondary   bool   `json:"isSecondary"`
	DominantColor string `json:"dominantColor,omitempty"`
}
