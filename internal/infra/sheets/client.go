package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets values API for a single service account. Construct it
// once at startup and share it; it is read-only after construction.
type Client struct {
	svc   *sheetsv4.Service
	email string
}

// New authenticates with the service-account JSON blob from the environment.
func New(ctx context.Context, credentialsJSON string) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON([]byte(credentialsJSON), sheetsv4.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheetsv4.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, email: cfg.Email}, nil
}

// ServiceAccountEmail is included in operator-facing error messages so the
// owner can check the sheet is shared with the right account.
func (c *Client) ServiceAccountEmail() string {
	return c.email
}

func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	res, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, &sheetsv4.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, clearRange string) error {
	_, err := c.svc.Spreadsheets.Values.
		Clear(spreadsheetID, clearRange, &sheetsv4.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}
