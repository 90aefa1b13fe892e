package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendsight/backend/internal/aggregate"
	v1 "github.com/spendsight/backend/internal/controllers/v1"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/internal/router"
	"github.com/spendsight/backend/internal/sync"
	"github.com/spendsight/backend/internal/types"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database. This also migrates the schema.
	err = models.Connect(filepath.Join(dataDir, "spendsight.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The URL clients use to reach the API, used in returned links
	baseURL := os.Getenv("API_URL")

	// The remote row store. Without a configured sheet the backend
	// falls back to an in-memory store, sync will not survive restarts.
	var remote sync.RowStore
	sheetID, ok := os.LookupEnv("SHEET_ID")
	if ok {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := sync.NewSheetsStore(ctx, sheetID)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		remote = store
		log.Info().Str("sheet", sheetID).Msg("using Google Sheets as remote store")
	} else {
		remote = sync.NewMemoryStore()
		log.Warn().Msg("SHEET_ID is not set, using an in-memory remote store")
	}

	// The weekday weekly budget periods start on
	weekStart := time.Monday
	if name, ok := os.LookupEnv("WEEK_START"); ok {
		weekStart, err = types.ParseWeekday(name)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	locale := os.Getenv("CURRENCY_LOCALE")
	if locale == "" {
		locale = "en-US"
	}

	v1.Configure(remote, aggregate.New(models.DB, weekStart, locale))

	r, err := router.Router(baseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
