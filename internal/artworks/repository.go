package artworks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const artworksSheet = "Artworks"

// SheetsAPI is the subset of the Sheets client the repository needs. A nil
// value puts the repository in mock mode: reads serve the bundled dataset and
// writes succeed as no-ops.
type SheetsAPI interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error
	ServiceAccountEmail() string
}

// Repository reads artworks from the two artists' spreadsheets and patches
// individual cells. It never creates or deletes rows.
type Repository struct {
	api            SheetsAPI
	boldsenSheetID string
	zeniaSheetID   string
}

func NewRepository(api SheetsAPI, boldsenSheetID, zeniaSheetID string) *Repository {
	return &Repository{api: api, boldsenSheetID: boldsenSheetID, zeniaSheetID: zeniaSheetID}
}

// Result carries whatever data loaded plus a human-readable error for the
// parts that did not. Pages render the data and show the error alongside.
type Result struct {
	Artworks []Artwork `json:"artworks"`
	Error    string    `json:"error,omitempty"`
}

func (r *Repository) fetchSheet(ctx context.Context, sheetID string, artist Artist) ([]Artwork, string) {
	if r.api == nil {
		return nil, fmt.Sprintf("Google credentials not configured. Cannot fetch for %s.", artist)
	}

	rows, err := r.api.GetValues(ctx, sheetID, artworksSheet)
	if err != nil {
		log.Printf("Error reading from Google Sheet for %s (ID: %s): %v", artist, sheetID, err)
		return nil, fmt.Sprintf(
			"Kunne ikke indlæse værker for %s. Tjek at Sheet ID er korrekt og at det er delt med service-kontoen. Service-konto email: %s",
			artist, r.api.ServiceAccountEmail(),
		)
	}
	if len(rows) <= 1 {
		return []Artwork{}, ""
	}

	header := headerStrings(rows[0])
	artworks := make([]Artwork, 0, len(rows)-1)
	for _, row := range rows[1:] {
		art := MapRow(header, row, artist)
		if art.ID == "" {
			continue
		}
		artworks = append(artworks, art)
	}
	return artworks, ""
}

// GetAll fetches both artists' sheets concurrently. One sheet failing does not
// block the other's data; errors are joined and reported alongside whatever
// loaded. With no credentials and no data at all, the mock dataset is served.
func (r *Repository) GetAll(ctx context.Context) Result {
	sources := []struct {
		artist  Artist
		sheetID string
	}{
		{ArtistBoldsen, r.boldsenSheetID},
		{ArtistZenia, r.zeniaSheetID},
	}

	type fetchResult struct {
		artworks []Artwork
		errMsg   string
	}
	results := make([]fetchResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, artist Artist, sheetID string) {
			defer wg.Done()
			artworks, errMsg := r.fetchSheet(ctx, sheetID, artist)
			results[i] = fetchResult{artworks: artworks, errMsg: errMsg}
		}(i, src.artist, src.sheetID)
	}
	wg.Wait()

	// Always an array in the response, even when nothing loaded.
	combined := []Artwork{}
	var errs []string
	for _, res := range results {
		combined = append(combined, res.artworks...)
		if res.errMsg != "" {
			errs = append(errs, res.errMsg)
		}
	}

	if r.api == nil && len(combined) == 0 {
		log.Println("Google credentials not found. Returning mock data.")
		return Result{
			Artworks: MockArtworks(),
			Error:    "Viser midlertidige data, da Google Sheets-integrationen ikke er konfigureret.",
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return creationTime(combined[i]).After(creationTime(combined[j]))
	})

	return Result{Artworks: combined, Error: strings.Join(errs, "\n")}
}

// GetByID linear-searches the combined list; the dataset is small enough that
// a per-id fetch would not pay for itself.
func (r *Repository) GetByID(ctx context.Context, id string) (Artwork, error) {
	res := r.GetAll(ctx)
	for _, art := range res.Artworks {
		if art.ID == id {
			return art, nil
		}
	}
	if res.Error != "" {
		return Artwork{}, errors.New(res.Error)
	}
	return Artwork{}, fmt.Errorf("kunstværk med ID %s blev ikke fundet", id)
}

// Patch applies one single-cell write per field against the owning artist's
// sheet, in sorted field order so a partial failure has a deterministic
// footprint. The first failing write aborts the rest; cells already written
// stay written. There is no batch update across fields.
func (r *Repository) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	sheetID := r.boldsenSheetID
	if art, err := r.GetByID(ctx, id); err == nil && art.Artist == ArtistZenia {
		sheetID = r.zeniaSheetID
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := r.updateSheetValue(ctx, sheetID, "id", id, key, sheetValue(fields[key])); err != nil {
			return err
		}
	}
	return nil
}

// sheetValue serializes a patch value the way the sheet stores it: booleans as
// "TRUE"/"FALSE", nil as the empty string.
func sheetValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}

func (r *Repository) updateSheetValue(ctx context.Context, sheetID, idKey, idValue, columnKey, newValue string) error {
	if r.api == nil {
		log.Println("Mock mode: not updating sheet, no credentials configured.")
		return nil
	}

	rows, err := r.api.GetValues(ctx, sheetID, artworksSheet+"!A:Z")
	if err != nil {
		return fmt.Errorf("could not update sheet: %w", err)
	}
	if len(rows) <= 1 {
		return errors.New("sheet is empty or has no data")
	}

	header := headerStrings(rows[0])
	idCol := indexOf(header, idKey)
	valueCol := indexOf(header, columnKey)
	if idCol == -1 || valueCol == -1 {
		return fmt.Errorf("could not find column %q in sheet", columnKey)
	}

	dataRow := -1
	for i, row := range rows[1:] {
		if cellString(row, idCol) == idValue {
			dataRow = i
			break
		}
	}
	if dataRow == -1 {
		return fmt.Errorf("row with ID %q not found", idValue)
	}

	// +2: one for the header row, one because sheet rows are 1-based.
	cell := fmt.Sprintf("%s!%c%d", artworksSheet, rune('A'+valueCol), dataRow+2)
	if err := r.api.UpdateValues(ctx, sheetID, cell, [][]interface{}{{newValue}}); err != nil {
		return fmt.Errorf("could not update sheet: %w", err)
	}
	return nil
}

func headerStrings(row []interface{}) []string {
	header := make([]string, len(row))
	for i := range row {
		header[i] = cellString(row, i)
	}
	return header
}

func indexOf(header []string, key string) int {
	for i, h := range header {
		if h == key {
			return i
		}
	}
	return -1
}

func creationTime(a Artwork) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, a.CreationDate); err == nil {
			return t
		}
	}
	return time.Time{}
}
