package importer

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/spendsight/backend/internal/models"
)

// Fingerprint computes the stable identity of a transaction. It is a pure
// function of the account source, the posting date, the amount, the raw
// description and a within-day occurrence counter; re-importing the same
// file therefore always yields the same fingerprints.
//
// The occurrence counter disambiguates legitimate duplicates: two
// identical coffees on the same day get occurrence 0 and 1.
func Fingerprint(accountSource string, date time.Time, amount int64, description string, occurrence int) string {
	payload := fmt.Sprintf("%s|%s|%d|%s|%d", accountSource, date.Format("2006-01-02"), amount, description, occurrence)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(payload)))
}

// Normalize maps parsed rows to canonical transactions, computing the
// fingerprint for each. The occurrence counter is assigned in file order,
// so normalization of the same file is deterministic.
func Normalize(rows []Row, profile Profile) []models.Transaction {
	occurrences := make(map[string]int, len(rows))
	transactions := make([]models.Transaction, 0, len(rows))

	for _, row := range rows {
		key := fmt.Sprintf("%s|%d|%s", row.Date.Format("2006-01-02"), row.Amount, row.Description)
		occurrence := occurrences[key]
		occurrences[key] = occurrence + 1

		transactions = append(transactions, models.Transaction{
			Fingerprint:   Fingerprint(profile.AccountSource, row.Date, row.Amount, row.Description, occurrence),
			Date:          row.Date,
			Amount:        row.Amount,
			Description:   row.Description,
			AccountSource: profile.AccountSource,
			BankCategory:  row.Category,
			SyncState:     models.SyncStateLocal,
		})
	}

	return transactions
}
