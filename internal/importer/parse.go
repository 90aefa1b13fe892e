package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendsight/backend/internal/models"
)

// Row is one successfully parsed CSV row.
type Row struct {
	// Line is the 1-based line number in the source file, header
	// included.
	Line int

	Date        time.Time
	Amount      int64 // minor units, outflows positive
	Description string
	Category    string
}

// RowError records a single skipped row. A row error does not abort the
// import.
type RowError struct {
	Line int    `json:"line" example:"4"`
	Err  string `json:"error" example:"malformed input: could not parse amount \"12,34.5\""`
}

// ReadHeader reads the first line of a CSV file. It is used for profile
// detection, the caller has to seek back before parsing.
func ReadHeader(f io.Reader) ([]string, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: the file is empty", models.ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read CSV header: %v", models.ErrMalformedInput, err)
	}

	return header, nil
}

// Parse reads a bank CSV export with the given profile. Rows that fail the
// required field checks are skipped and reported in the second return
// value; only an unreadable file or a header without the required columns
// aborts the whole import.
func Parse(f io.Reader, profile Profile) ([]Row, []RowError, error) {
	reader := csv.NewReader(f)

	// Bank exports occasionally have ragged trailing columns
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: the file is empty", models.ErrMalformedInput)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not read CSV header: %v", models.ErrMalformedInput, err)
	}

	dateCol := columnIndex(header, profile.DateColumns)
	descCol := columnIndex(header, profile.DescriptionColumns)
	amountCol := columnIndex(header, profile.AmountColumns)
	categoryCol := -1
	if len(profile.CategoryColumns) > 0 {
		categoryCol = columnIndex(header, profile.CategoryColumns)
	}

	if dateCol < 0 || descCol < 0 || amountCol < 0 {
		return nil, nil, fmt.Errorf("%w: the CSV header is missing required columns for profile %s", models.ErrMalformedInput, profile.Name)
	}

	var rows []Row
	var rowErrs []RowError

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: fmt.Sprintf("could not read line: %v", err)})
			continue
		}

		row, err := parseRecord(record, profile, dateCol, descCol, amountCol, categoryCol)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err.Error()})
			continue
		}

		row.Line = line
		rows = append(rows, row)
	}

	return rows, rowErrs, nil
}

func parseRecord(record []string, profile Profile, dateCol, descCol, amountCol, categoryCol int) (Row, error) {
	max := dateCol
	for _, c := range []int{descCol, amountCol} {
		if c > max {
			max = c
		}
	}
	if len(record) <= max {
		return Row{}, fmt.Errorf("%w: the row has %d fields, required columns are missing", models.ErrMalformedInput, len(record))
	}

	date, err := time.Parse(profile.DateLayout, strings.TrimSpace(record[dateCol]))
	if err != nil {
		return Row{}, fmt.Errorf("%w: could not parse date %q", models.ErrMalformedInput, record[dateCol])
	}

	description := strings.TrimSpace(record[descCol])
	if description == "" {
		return Row{}, fmt.Errorf("%w: the description is empty", models.ErrMalformedInput)
	}

	amount, err := ParseAmount(record[amountCol])
	if err != nil {
		return Row{}, err
	}

	if profile.NegateAmount {
		amount = -amount
	}

	row := Row{
		Date:        date.In(time.UTC),
		Amount:      amount,
		Description: description,
	}

	if categoryCol >= 0 && categoryCol < len(record) {
		row.Category = strings.TrimSpace(record[categoryCol])
	}

	return row, nil
}

// ParseAmount parses an amount into minor currency units. Currency
// symbols, thousands separators and more than two decimal places are
// rejected, there is no silent truncation.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: the amount is empty", models.ErrMalformedInput)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse amount %q", models.ErrMalformedInput, s)
	}

	if amount.Exponent() < -2 {
		return 0, fmt.Errorf("%w: amount %q has more than two decimal places", models.ErrMalformedInput, s)
	}

	return amount.Shift(2).IntPart(), nil
}
