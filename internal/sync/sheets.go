package sync

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/spendsight/backend/internal/models"
)

// sheetName is the worksheet all transactions are mirrored to.
const sheetName = "Transactions"

var sheetHeader = []interface{}{
	"Fingerprint", "Date", "Amount", "Description", "Account",
	"Bank Category", "Category", "Necessity", "Frequency", "Swept",
}

// SheetsStore is a RowStore backed by a Google Sheets spreadsheet. Every
// transaction is one row on the Transactions worksheet, keyed by the
// fingerprint in column A.
//
// The Sheets API gives no transactional guarantees; the reconciler
// tolerates stale reads by re-checking fingerprints.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore connects to the spreadsheet and makes sure the
// Transactions worksheet and its header row exist. Credentials are
// resolved the usual Google way (GOOGLE_APPLICATION_CREDENTIALS or
// ambient service account), additional client options can be passed
// through.
func NewSheetsStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetsStore, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to the Sheets API: %w", err)
	}

	s := &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}

	err = s.ensureSheet(ctx)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SheetsStore) ensureSheet(ctx context.Context) error {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("opening spreadsheet %s: %w", s.spreadsheetID, err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return s.ensureHeader(ctx)
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetName},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating worksheet %s: %w", sheetName, err)
	}

	return s.ensureHeader(ctx)
}

func (s *SheetsStore) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetName+"!A1:J1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading header row: %w", err)
	}

	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 && fmt.Sprint(resp.Values[0][0]) == sheetHeader[0] {
		return nil
	}

	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, sheetName+"!A1:J1", &sheets.ValueRange{
		Values: [][]interface{}{sheetHeader},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	return nil
}

// ReadAll reads every data row of the Transactions worksheet. Rows
// without a fingerprint are skipped.
func (s *SheetsStore) ReadAll(ctx context.Context) ([]Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetName+"!A2:J").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, cells := range resp.Values {
		row, err := rowFromCells(cells)
		if err != nil {
			return nil, err
		}
		if row.Fingerprint == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// AppendOrUpdate writes the row for the fingerprint, updating it in place
// when it already exists.
func (s *SheetsStore) AppendOrUpdate(ctx context.Context, fingerprint string, fields Fields) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetName+"!A:A").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading fingerprint column: %w", err)
	}

	values := &sheets.ValueRange{Values: [][]interface{}{cellsFromRow(fingerprint, fields)}}

	for i, cells := range resp.Values {
		if len(cells) > 0 && fmt.Sprint(cells[0]) == fingerprint {
			rowRange := fmt.Sprintf("%s!A%d:J%d", sheetName, i+1, i+1)
			_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rowRange, values).
				ValueInputOption("RAW").Context(ctx).Do()
			if err != nil {
				return fmt.Errorf("updating row for %s: %w", fingerprint, err)
			}
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheetName+"!A:J", values).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending row for %s: %w", fingerprint, err)
	}

	return nil
}

func cellsFromRow(fingerprint string, f Fields) []interface{} {
	return []interface{}{
		fingerprint,
		f.Date,
		decimal.New(f.Amount, -2).StringFixed(2),
		f.Description,
		f.AccountSource,
		f.BankCategory,
		f.Category,
		string(f.Necessity),
		string(f.Frequency),
		strconv.FormatBool(f.Swept),
	}
}

func rowFromCells(cells []interface{}) (Row, error) {
	cell := func(i int) string {
		if i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(fmt.Sprint(cells[i]))
	}

	row := Row{
		Fingerprint: cell(0),
		Fields: Fields{
			Date:          cell(1),
			Description:   cell(3),
			AccountSource: cell(4),
			BankCategory:  cell(5),
			Category:      cell(6),
			Necessity:     models.Necessity(cell(7)),
			Frequency:     models.Frequency(cell(8)),
		},
	}

	if amount := cell(2); amount != "" {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return Row{}, fmt.Errorf("row %s has a malformed amount %q: %w", row.Fingerprint, amount, err)
		}
		row.Fields.Amount = parsed.Shift(2).IntPart()
	}

	if swept := cell(9); swept != "" {
		parsed, err := strconv.ParseBool(swept)
		if err != nil {
			return Row{}, fmt.Errorf("row %s has a malformed swept flag %q: %w", row.Fingerprint, swept, err)
		}
		row.Fields.Swept = parsed
	}

	return row, nil
}
