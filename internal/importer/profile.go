// Package importer parses bank-exported CSV files and normalizes them
// into transactions.
package importer

import (
	"fmt"
	"strings"

	"github.com/spendsight/backend/internal/models"
)

// Profile describes the CSV export format of one bank and account type.
// Profiles are data, not code: they declare the required columns with
// their header aliases, the date layout and the sign convention of the
// amount column.
type Profile struct {
	Name          string
	AccountSource string

	// Header aliases per required field. Matching is case-insensitive
	// and tolerant of surrounding whitespace. Unknown columns are
	// ignored.
	DateColumns        []string
	DescriptionColumns []string
	AmountColumns      []string

	// CategoryColumns are optional; some banks pre-categorize exports.
	CategoryColumns []string

	DateLayout string

	// NegateAmount is set for banks that export outflows as negative
	// numbers. After parsing, all amounts follow a single convention:
	// outflows positive, inflows negative.
	NegateAmount bool
}

var profiles = []Profile{
	{
		Name:               "ChaseCredit",
		AccountSource:      "chase_credit",
		DateColumns:        []string{"Transaction Date"},
		DescriptionColumns: []string{"Description"},
		AmountColumns:      []string{"Amount"},
		CategoryColumns:    []string{"Category"},
		DateLayout:         "01/02/2006",
		// Chase exports purchases as negative numbers
		NegateAmount: true,
	},
	{
		Name:               "ChaseChecking",
		AccountSource:      "chase_checking",
		DateColumns:        []string{"Posting Date"},
		DescriptionColumns: []string{"Description"},
		AmountColumns:      []string{"Amount"},
		DateLayout:         "01/02/2006",
		// Chase exports debits as negative numbers
		NegateAmount: true,
	},
	{
		Name:               "DiscoverCredit",
		AccountSource:      "discover_credit",
		DateColumns:        []string{"Trans. Date", "Transaction Date"},
		DescriptionColumns: []string{"Description"},
		AmountColumns:      []string{"Amount"},
		CategoryColumns:    []string{"Category"},
		DateLayout:         "01/02/2006",
		// Discover exports purchases as positive numbers
		NegateAmount: false,
	},
}

// Profiles returns the names of all known profiles.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}

// ProfileByName returns the profile with the given name.
func ProfileByName(name string) (Profile, error) {
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}

	return Profile{}, fmt.Errorf("%w: unknown profile %q", models.ErrMalformedInput, name)
}

// DetectProfile returns the profile whose required columns are all present
// in the header. Chase checking exports carry a "Balance" column that
// credit exports do not, Chase credit exports carry a "Post Date" column;
// the required column sets are therefore unambiguous.
func DetectProfile(header []string) (Profile, error) {
	cols := make(map[string]bool, len(header))
	for _, h := range header {
		cols[normalizeHeader(h)] = true
	}

	switch {
	case cols["transaction date"] && cols["post date"]:
		return ProfileByName("ChaseCredit")
	case cols["posting date"] && cols["balance"]:
		return ProfileByName("ChaseChecking")
	case cols["trans. date"]:
		return ProfileByName("DiscoverCredit")
	}

	return Profile{}, fmt.Errorf("%w: no profile matches the CSV header", models.ErrMalformedInput)
}

// columnIndex returns the index of the first header matching one of the
// aliases, or -1.
func columnIndex(header []string, aliases []string) int {
	for i, h := range header {
		for _, a := range aliases {
			if normalizeHeader(h) == normalizeHeader(a) {
				return i
			}
		}
	}
	return -1
}

func normalizeHeader(s string) string {
	// Strip a UTF-8 BOM, some bank exports start with one
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}
