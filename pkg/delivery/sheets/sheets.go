// Package sheets appends brief rows to a Google Sheets spreadsheet using a
// service account. The spreadsheet is the system of record for submitted
// briefs, so callers treat append failures as fatal.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const scope = "https://www.googleapis.com/auth/spreadsheets"

// Config locates the target spreadsheet and the credentials to reach it.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
	CredentialsJSON []byte
}

// Appender implements delivery.RowAppender on top of the Sheets API.
type Appender struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

// NewAppender builds the API client. Credentials come from the JSON blob
// when present, otherwise from the credentials file.
func NewAppender(ctx context.Context, cfg Config) (*Appender, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Brand Briefs"
	}

	var opts []option.ClientOption
	switch {
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("sheets: service account credentials are required")
	}
	opts = append(opts, option.WithScopes(scope))

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &Appender{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRow appends one row after the current data region of the sheet.
// Values go in raw, unparsed by the spreadsheet.
func (a *Appender) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := a.service.Spreadsheets.Values.
		Append(a.spreadsheetID, fmt.Sprintf("%s!A1", a.sheetName), &sheetsapi.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append row: %w", err)
	}
	return nil
}
