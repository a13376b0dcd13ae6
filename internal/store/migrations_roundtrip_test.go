package store

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"vitrin/api/internal/persist"
	"vitrin/api/internal/section"
)

// Runs against a disposable database only; the public schema is dropped.
func TestMigrationsRoundTripPostgres(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("VITRIN_TEST_DATABASE_URL"))
	if dsn == "" {
		t.Skip("VITRIN_TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	require.NoError(t, err)

	migrations := os.DirFS("../../db/migrations")
	applied, err := ApplyMigrations(ctx, db, migrations)
	require.NoError(t, err, "first up pass")
	require.NotEmpty(t, applied)

	again, err := ApplyMigrations(ctx, db, migrations)
	require.NoError(t, err)
	require.Empty(t, again, "second run must be a no-op")

	docs := NewPostgresStore(db)
	rec := persist.Record{
		DocumentID: "roundtrip",
		Sections:   []section.Instance{{ID: "s1", Type: "HeroCentered", Props: section.Props{"title": "Merhaba"}}},
		Theme:      section.Theme{"primaryColor": "#0E7490"},
	}
	require.NoError(t, docs.Save(ctx, rec))
	got, err := docs.Load(ctx, "roundtrip")
	require.NoError(t, err)
	require.Equal(t, "Merhaba", got.Sections[0].Props["title"])
	require.Equal(t, "#0E7490", got.Theme["primaryColor"])

	require.NoError(t, revertAll(ctx, db, migrations, applied))
	_, err = db.ExecContext(ctx, `DELETE FROM schema_migrations`)
	require.NoError(t, err)

	_, err = ApplyMigrations(ctx, db, migrations)
	require.NoError(t, err, "up pass after revert")
}

// revertAll runs the down file of every applied version, newest first.
func revertAll(ctx context.Context, db *sql.DB, fsys fs.FS, applied []string) error {
	for _, up := range slices.Backward(applied) {
		raw, err := fs.ReadFile(fsys, strings.TrimSuffix(up, ".up.sql")+".down.sql")
		if err != nil {
			return err
		}
		if stmt := strings.TrimSpace(string(raw)); stmt != "" {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}
