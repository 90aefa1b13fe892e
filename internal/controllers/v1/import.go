package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/importer"
	"github.com/spendsight/backend/internal/ledger"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/internal/rules"
)

type ImportQuery struct {
	// Profile names the bank export format. When empty, the profile is
	// detected from the CSV header.
	Profile string `form:"profile" example:"ChaseCredit"`
}

type ImportResponse struct {
	Data  *ImportResult `json:"data"`  // The import result
	Error *string       `json:"error"` // The error, if any occurred
}

type ImportResult struct {
	Profile  string              `json:"profile" example:"ChaseCredit"` // The profile used for the import
	Imported int                 `json:"imported" example:"41"`         // Number of new transactions
	Merged   int                 `json:"merged" example:"3"`            // Number of rows merged into already known transactions
	Skipped  []importer.RowError `json:"skipped"`                       // Rows skipped because of per-row errors
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// @Summary		Import a bank CSV export
// @Description	Parses the uploaded CSV with the selected profile, normalizes the rows into transactions, applies the current rules and upserts everything into the ledger. Rows that fail the required field checks are skipped and reported; re-importing a file the ledger has already seen creates no duplicates.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"CSV file"
// @Param			profile	query		string	false	"Profile name, e.g. ChaseCredit. Detected from the header when empty"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query ImportQuery
	if err := c.BindQuery(&query); err != nil {
		s := httputil.ErrInvalidBody.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}
	defer f.Close()

	result, err := runImport(f, query.Profile)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Data: &result})
}

// runImport is the import pipeline: parse, normalize, tag, upsert.
func runImport(f multipart.File, profileName string) (ImportResult, error) {
	var profile importer.Profile
	var err error

	if profileName != "" {
		profile, err = importer.ProfileByName(profileName)
		if err != nil {
			return ImportResult{}, err
		}

		rows, rowErrs, err := importer.Parse(f, profile)
		if err != nil {
			return ImportResult{}, err
		}

		return upsertRows(rows, rowErrs, profile)
	}

	// Peek at the header for detection, then re-parse with the profile.
	// The file is a multipart buffer, seeking back is cheap.
	profile, err = detectFromFile(f)
	if err != nil {
		return ImportResult{}, err
	}

	rows, rowErrs, err := importer.Parse(f, profile)
	if err != nil {
		return ImportResult{}, err
	}

	return upsertRows(rows, rowErrs, profile)
}

func detectFromFile(f multipart.File) (importer.Profile, error) {
	header, err := importer.ReadHeader(f)
	if err != nil {
		return importer.Profile{}, err
	}

	_, err = f.Seek(0, 0)
	if err != nil {
		return importer.Profile{}, err
	}

	return importer.DetectProfile(header)
}

func upsertRows(rows []importer.Row, rowErrs []importer.RowError, profile importer.Profile) (ImportResult, error) {
	result := ImportResult{
		Profile: profile.Name,
		Skipped: rowErrs,
	}
	if result.Skipped == nil {
		// An empty list, not null, when no rows were skipped
		result.Skipped = make([]importer.RowError, 0)
	}

	snapshot, err := rules.LoadSnapshot(models.DB)
	if err != nil {
		return result, err
	}

	store := ledger.NewStore(models.DB)
	sweptBy := make(map[uuid.UUID]uint)

	for _, t := range importer.Normalize(rows, profile) {
		applied := snapshot.Apply(&t, false)

		created, err := store.Upsert(t)
		if err != nil {
			// A fingerprint collision is fatal to the import and must
			// surface, never be swallowed
			return result, err
		}

		if created {
			result.Imported++
			// Merged rows keep the tags of the stored transaction, so
			// only created rows count as newly swept
			if t.Swept && applied.SweptBy != uuid.Nil {
				sweptBy[applied.SweptBy]++
			}
		} else {
			result.Merged++
		}
	}

	for id, count := range sweptBy {
		err = models.DB.Model(&models.Rule{}).
			Where("id = ?", id).
			UpdateColumn("swept_count", gorm.Expr("swept_count + ?", count)).Error
		if err != nil {
			return result, err
		}
	}

	log.Info().
		Str("profile", profile.Name).
		Int("imported", result.Imported).
		Int("merged", result.Merged).
		Int("skipped", len(result.Skipped)).
		Msg("import finished")

	return result, nil
}
