package database_test

import (
	"context"
	"errors"
	"testing"

	"project-management/internal/database"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    database.Dialect
		wantErr bool
	}{
		{driver: "postgres", want: database.Postgres},
		{driver: " SQLite ", want: database.SQLite},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := database.ParseDialect(tt.driver)
			if tt.wantErr {
				if !errors.Is(err, database.ErrUnsupportedDriver) {
					t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRebind(t *testing.T) {
	query := "UPDATE t SET a = ?, b = ? WHERE id = ?"

	if got := database.SQLite.Rebind(query); got != query {
		t.Errorf("sqlite query must be unchanged, got %s", got)
	}

	want := "UPDATE t SET a = $1, b = $2 WHERE id = $3"
	if got := database.Postgres.Rebind(query); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	ctx := context.Background()

	db, dialect, err := database.Open(ctx, database.Config{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if dialect != database.SQLite {
		t.Fatalf("expected sqlite dialect, got %s", dialect)
	}

	applied, err := database.Migrate(ctx, db, dialect)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if len(applied) != 1 || applied[0] != 1 {
		t.Errorf("expected version 1 applied, got %v", applied)
	}

	for _, table := range []string{"projects", "project_phases", "work_packages"} {
		var n int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	t.Run("Second run is a no-op", func(t *testing.T) {
		applied, err := database.Migrate(ctx, db, dialect)
		if err != nil {
			t.Fatalf("migrate again: %v", err)
		}
		if len(applied) != 0 {
			t.Errorf("expected nothing applied, got %v", applied)
		}
	})
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, _, err := database.Open(context.Background(), database.Config{Driver: "oracle"})
	if !errors.Is(err, database.ErrUnsupportedDriver) {
		t.Errorf("expected ErrUnsupportedDriver, got %v", err)
	}
}
