// Package gsheet appends converted trade rows to a Google Sheet through the
// Sheets API, authenticated with a service account.
package gsheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps an authenticated Sheets service.
type Client struct {
	svc *sheets.Service
}

// NewClient builds a Sheets client from resolved service-account
// credentials.
func NewClient(ctx context.Context, creds *google.Credentials) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("cannot build Google Sheets client: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Append adds rows after the existing content of the given tab, preserving
// column order and never touching prior rows. It returns the number of rows
// appended.
//
// Appending is not idempotent: running the same export twice appends the
// rows twice. That is a documented property of the Sheets strategy, not a
// defect; the local workbook strategy is the deduplicating one.
func (c *Client) Append(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	vr := &sheets.ValueRange{Values: rows}
	resp, err := c.svc.Spreadsheets.Values.
		Append(spreadsheetID, tab+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, describeAPIError(err, spreadsheetID, tab)
	}
	if resp.Updates == nil {
		return len(rows), nil
	}
	return int(resp.Updates.UpdatedRows), nil
}

// describeAPIError turns raw Sheets API failures into messages a trader can
// act on without reading a stack trace.
func describeAPIError(err error, spreadsheetID, tab string) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("cannot reach Google Sheets (check your network connection): %w", err)
	}
	switch gerr.Code {
	case 403:
		if apiDisabled(gerr) {
			return fmt.Errorf("the Google Sheets API is not enabled on your Cloud project: enable it in the Cloud console, wait a minute, and retry: %w", err)
		}
		return fmt.Errorf("no permission to write spreadsheet %s: share the sheet with your service-account email and grant it Editor access: %w", spreadsheetID, err)
	case 404:
		return fmt.Errorf("spreadsheet %s (tab %q) was not found: check the spreadsheet id and tab name: %w", spreadsheetID, tab, err)
	case 401:
		return fmt.Errorf("Google rejected the service-account credentials: re-download the key file: %w", err)
	}
	return fmt.Errorf("Google Sheets append failed: %w", err)
}

// apiDisabled tells a disabled-API 403 apart from a not-shared-sheet 403.
func apiDisabled(gerr *googleapi.Error) bool {
	for _, e := range gerr.Errors {
		if e.Reason == "accessNotConfigured" {
			return true
		}
	}
	msg := strings.ToLower(gerr.Message)
	return strings.Contains(msg, "has not been used") || strings.Contains(msg, "is disabled")
}
