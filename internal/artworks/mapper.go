package artworks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MapRow converts one raw spreadsheet row into an Artwork, matching cells to
// the header row by position. Coercion is per field name:
//
//   - images/videos hold JSON in the cell, sometimes wrapped in an extra pair
//     of quotes by the sheet; any parse failure means an empty list
//   - flag cells are true only for the exact string "TRUE"
//   - numeric cells use a comma decimal separator
//   - status and type fall back to "available" and "painting"
//
// Pure function: no I/O, same row always maps to the same record.
func MapRow(header []string, row []interface{}, artist Artist) Artwork {
	art := Artwork{Artist: artist}

	var price, vatRate *float64
	var primaryIndex *int
	typeSeen := false

	for i, key := range header {
		value := cellString(row, i)

		switch key {
		case "id":
			art.ID = value
		case "name":
			art.Name = value
		case "dimensions":
			art.Dimensions = value
		case "creationDate":
			art.CreationDate = value
		case "materials":
			art.Materials = value
		case "description":
			art.Description = value
		case "dominantColor":
			art.DominantColor = value
		case "images":
			art.Images = parseImages(value)
		case "videos":
			art.Videos = parseVideos(value)
		case "atGallery":
			art.AtGallery = value == "TRUE"
		case "isSecondary":
			art.IsSecondary = value == "TRUE"
		case "status":
			if value == "sold" {
				art.Status = StatusSold
			} else {
				art.Status = StatusAvailable
			}
		case "type":
			typeSeen = true
			switch value {
			case "keramik":
				art.Type = TypeKeramik
			case "vægkunst":
				art.Type = TypeVaegkunst
			default:
				art.Type = TypePainting
			}
		case "price":
			price = parseNumber(value)
		case "vatRate":
			vatRate = parseNumber(value)
		case "primaryImageIndex":
			if n := parseNumber(value); n != nil {
				idx := int(*n)
				primaryIndex = &idx
			}
		case "width":
			art.Width = parseNumber(value)
		case "height":
			art.Height = parseNumber(value)
		case "diameter":
			art.Diameter = parseNumber(value)
		case "weight":
			art.Weight = parseNumber(value)
		case "discount":
			art.Discount = parseNumber(value)
		}
	}

	if art.Images == nil {
		art.Images = []Image{}
	}
	if art.Videos == nil {
		art.Videos = []Video{}
	}
	if !typeSeen {
		if artist == ArtistZenia {
			art.Type = TypeKeramik
		} else {
			art.Type = TypePainting
		}
	}
	if art.Status == "" {
		art.Status = StatusAvailable
	}
	if vatRate == nil {
		if artist == ArtistZenia {
			art.VatRate = 25
		} else {
			art.VatRate = 5
		}
	} else {
		art.VatRate = *vatRate
	}
	if price != nil {
		art.Price = *price
	}
	if primaryIndex != nil {
		art.PrimaryImageIndex = *primaryIndex
	}

	return art
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

// parseNumber returns nil for an empty or unparseable cell. Decimal commas are
// normalized to dots before parsing.
func parseNumber(value string) *float64 {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &n
}

// decodeCellJSON unwraps one level of extra quoting before decoding. Sheets
// sometimes stores the JSON cell double-encoded when edited by hand.
func decodeCellJSON(value string, out interface{}) error {
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		var unquoted string
		if err := json.Unmarshal([]byte(value), &unquoted); err == nil {
			value = unquoted
		}
	}
	return json.Unmarshal([]byte(value), out)
}

func parseImages(value string) []Image {
	var images []Image
	if err := decodeCellJSON(value, &images); err != nil || images == nil {
		return []Image{}
	}
	return images
}

func parseVideos(value string) []Video {
	var videos []Video
	if err := decodeCellJSON(value, &videos); err != nil || videos == nil {
		return []Video{}
	}
	return videos
}
