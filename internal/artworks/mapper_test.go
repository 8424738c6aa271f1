package artworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(values ...interface{}) []interface{} { return values }

func TestMapRow_BooleanFlags(t *testing.T) {
	header := []string{"id", "atGallery", "isSecondary"}

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"exact_TRUE", "TRUE", true},
		{"lowercase_true", "true", false},
		{"one", "1", false},
		{"empty", "", false},
		{"FALSE", "FALSE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := MapRow(header, row("a1", tt.value, tt.value), ArtistBoldsen)
			assert.Equal(t, tt.want, art.AtGallery)
			assert.Equal(t, tt.want, art.IsSecondary)
		})
	}
}

func TestMapRow_CommaDecimals(t *testing.T) {
	header := []string{"id", "price", "weight", "discount"}
	art := MapRow(header, row("a1", "1234,50", "2,1", "10"), ArtistBoldsen)

	assert.Equal(t, 1234.50, art.Price)
	require.NotNil(t, art.Weight)
	assert.Equal(t, 2.1, *art.Weight)
	require.NotNil(t, art.Discount)
	assert.Equal(t, 10.0, *art.Discount)
}

func TestMapRow_EmptyNumericCells(t *testing.T) {
	header := []string{"id", "price", "width", "primaryImageIndex"}
	art := MapRow(header, row("a1", "", "", ""), ArtistBoldsen)

	assert.Equal(t, 0.0, art.Price)
	assert.Nil(t, art.Width)
	assert.Equal(t, 0, art.PrimaryImageIndex)
}

func TestMapRow_ImageCellJSON(t *testing.T) {
	header := []string{"id", "images"}

	t.Run("plain_json", func(t *testing.T) {
		art := MapRow(header, row("a1", `[{"url":"https://x/1.jpg","dataAiHint":"blue vase"}]`), ArtistZenia)
		require.Len(t, art.Images, 1)
		assert.Equal(t, "https://x/1.jpg", art.Images[0].URL)
		assert.Equal(t, "blue vase", art.Images[0].DataAiHint)
	})

	t.Run("double_encoded", func(t *testing.T) {
		art := MapRow(header, row("a1", `"[{\"url\":\"https://x/2.jpg\"}]"`), ArtistZenia)
		require.Len(t, art.Images, 1)
		assert.Equal(t, "https://x/2.jpg", art.Images[0].URL)
	})

	t.Run("garbage_becomes_empty_list", func(t *testing.T) {
		art := MapRow(header, row("a1", "not json at all"), ArtistZenia)
		assert.NotNil(t, art.Images)
		assert.Empty(t, art.Images)
	})

	t.Run("missing_column_becomes_empty_list", func(t *testing.T) {
		art := MapRow([]string{"id"}, row("a1"), ArtistZenia)
		assert.NotNil(t, art.Images)
		assert.NotNil(t, art.Videos)
		assert.Empty(t, art.Images)
	})
}

func TestMapRow_VideoCellJSON(t *testing.T) {
	header := []string{"id", "videos"}
	art := MapRow(header, row("a1", `[{"url":"https://x/v.mp4","thumbnailUrl":"https://x/t.jpg"}]`), ArtistBoldsen)
	require.Len(t, art.Videos, 1)
	assert.Equal(t, "https://x/t.jpg", art.Videos[0].ThumbnailURL)
}

func TestMapRow_EnumFallbacks(t *testing.T) {
	header := []string{"id", "status", "type"}

	art := MapRow(header, row("a1", "sold", "keramik"), ArtistBoldsen)
	assert.Equal(t, StatusSold, art.Status)
	assert.Equal(t, TypeKeramik, art.Type)

	art = MapRow(header, row("a1", "SOLD", "vægkunst"), ArtistBoldsen)
	assert.Equal(t, StatusAvailable, art.Status)
	assert.Equal(t, TypeVaegkunst, art.Type)

	// Anything unrecognized in a present type column is a painting.
	art = MapRow(header, row("a1", "", "sculpture"), ArtistZenia)
	assert.Equal(t, StatusAvailable, art.Status)
	assert.Equal(t, TypePainting, art.Type)
}

func TestMapRow_ArtistDefaults(t *testing.T) {
	header := []string{"id"}

	zenia := MapRow(header, row("z1"), ArtistZenia)
	assert.Equal(t, TypeKeramik, zenia.Type)
	assert.Equal(t, 25.0, zenia.VatRate)

	boldsen := MapRow(header, row("b1"), ArtistBoldsen)
	assert.Equal(t, TypePainting, boldsen.Type)
	assert.Equal(t, 5.0, boldsen.VatRate)
}

func TestMapRow_TrimsAndStringifies(t *testing.T) {
	header := []string{"id", "name", "creationDate"}
	art := MapRow(header, row("  a1  ", "  Nordlys ", "2024-01-02"), ArtistBoldsen)

	assert.Equal(t, "a1", art.ID)
	assert.Equal(t, "Nordlys", art.Name)
	assert.Equal(t, "2024-01-02", art.CreationDate)
}

func TestMapRow_ShortRow(t *testing.T) {
	// Sheets omits trailing empty cells; the row can be shorter than the header.
	header := []string{"id", "name", "price", "status"}
	art := MapRow(header, row("a1", "Havblik"), ArtistBoldsen)

	assert.Equal(t, "a1", art.ID)
	assert.Equal(t, 0.0, art.Price)
	assert.Equal(t, StatusAvailable, art.Status)
}

func TestMapRow_IsPure(t *testing.T) {
	header := []string{"id", "price", "images", "atGallery"}
	r := row("a1", "99,5", `[{"url":"https://x/1.jpg"}]`, "TRUE")

	first := MapRow(header, r, ArtistZenia)
	second := MapRow(header, r, ArtistZenia)
	assert.Equal(t, first, second)
}
