package calendar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

const eventsSheet = "CalendarEvents"

// SheetsAPI is the subset of the Sheets client the calendar needs. Events live
// in a tab on the main (boldsen) spreadsheet.
type SheetsAPI interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error
	ClearValues(ctx context.Context, spreadsheetID, clearRange string) error
	ServiceAccountEmail() string
}

type Repository struct {
	api     SheetsAPI
	sheetID string
}

func NewRepository(api SheetsAPI, sheetID string) *Repository {
	return &Repository{api: api, sheetID: sheetID}
}

// GetAll returns every event row with a non-empty id and title. A missing
// CalendarEvents tab means the feature is simply not in use yet: empty list,
// no error. The tab gets created on the first save.
func (r *Repository) GetAll(ctx context.Context) ([]Event, string) {
	if r.api == nil {
		return []Event{}, "Google credentials not configured. Calendar feature is disabled."
	}

	rows, err := r.api.GetValues(ctx, r.sheetID, eventsSheet)
	if err != nil {
		if strings.Contains(err.Error(), "Unable to parse range") {
			log.Printf("%q sheet not found. Returning empty list. It will be created on the first save.", eventsSheet)
			return []Event{}, ""
		}
		log.Printf("Error reading calendar events from Google Sheet (ID: %s): %v", r.sheetID, err)
		return []Event{}, fmt.Sprintf(
			"Kunne ikke indlæse kalender. Tjek at et faneblad med navnet '%s' eksisterer, og at det er delt med service-kontoen. Service-konto email: %s",
			eventsSheet, r.api.ServiceAccountEmail(),
		)
	}
	if len(rows) <= 1 {
		return []Event{}, ""
	}

	header := make([]string, len(rows[0]))
	for i := range rows[0] {
		header[i] = cellString(rows[0], i)
	}

	events := make([]Event, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := MapRow(header, row)
		if e.ID == "" || e.Title == "" {
			continue
		}
		events = append(events, e)
	}
	return events, ""
}

// ReplaceAll rewrites the whole CalendarEvents tab: clear, then write header
// plus rows. When the clear fails because the tab does not exist yet, the
// write alone creates it.
func (r *Repository) ReplaceAll(ctx context.Context, events []Event) error {
	if r.api == nil {
		return errors.New("Google credentials not configured. Cannot save events.")
	}

	values := make([][]interface{}, 0, len(events)+1)
	headerRow := make([]interface{}, len(Header))
	for i, h := range Header {
		headerRow[i] = h
	}
	values = append(values, headerRow)
	for _, e := range events {
		values = append(values, e.Row())
	}

	if err := r.api.ClearValues(ctx, r.sheetID, eventsSheet); err != nil {
		if !strings.Contains(err.Error(), "Unable to parse range") {
			return fmt.Errorf("could not update calendar sheet: %w", err)
		}
	}

	if err := r.api.UpdateValues(ctx, r.sheetID, eventsSheet+"!A1", values); err != nil {
		return fmt.Errorf("could not create or write to calendar sheet: %w", err)
	}
	return nil
}
