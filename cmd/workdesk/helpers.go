package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/minhle/workdesk/internal/common"
	"github.com/minhle/workdesk/internal/config"
	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/storage"
)

// initStorage opens the configured database and brings the schema up to
// date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func parseKind(s string) (model.Kind, error) {
	switch model.Kind(s) {
	case model.KindLead, model.KindProject, model.KindTask:
		return model.Kind(s), nil
	default:
		return "", common.NewUserError(fmt.Sprintf("unknown kind %q (want lead, project or task)", s), nil)
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, common.NewUserError(fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s), err)
	}
	return t, nil
}

func formatMoney(amount float64) string {
	// Whole currency units, thousands separated.
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
