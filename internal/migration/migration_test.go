package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mapFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, body := range files {
		m[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return m
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&n); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return n > 0
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	r := NewRunner(openTestDB(t), mapFS(nil), SQLite)

	v, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if v != 0 {
		t.Errorf("CurrentVersion() = %d, want 0", v)
	}
}

func TestMigrationsSortedAndParsed(t *testing.T) {
	r := NewRunner(openTestDB(t), mapFS(map[string]string{
		"010_later.sql": "SELECT 1;",
		"002_kv.sql":    "SELECT 1;",
		"001_init.sql":  "SELECT 1;",
		"README.md":     "ignored",
	}), SQLite)

	ms, err := r.Migrations()
	if err != nil {
		t.Fatalf("Migrations() error = %v", err)
	}
	want := []struct {
		version int
		name    string
	}{{1, "init"}, {2, "kv"}, {10, "later"}}
	if len(ms) != len(want) {
		t.Fatalf("got %d migrations, want %d", len(ms), len(want))
	}
	for i, w := range want {
		if ms[i].Version != w.version || ms[i].Name != w.name {
			t.Errorf("migration %d = %d_%s, want %d_%s", i, ms[i].Version, ms[i].Name, w.version, w.name)
		}
	}
}

func TestMigrationsRejectBadFilenames(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing underscore", map[string]string{"001init.sql": "SELECT 1;"}},
		{"non numeric version", map[string]string{"abc_init.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}},
		{"duplicate version", map[string]string{"001_a.sql": "SELECT 1;", "001_b.sql": "SELECT 1;"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(openTestDB(t), mapFS(tt.files), SQLite)
			if _, err := r.Migrations(); err == nil {
				t.Error("Migrations() should fail")
			}
		})
	}
}

func TestApplyFromScratchThenNoOp(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, mapFS(map[string]string{
		"001_kv.sql":    "CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
		"002_extra.sql": "CREATE TABLE extra (id INTEGER);",
	}), SQLite)

	n, err := r.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Apply() applied %d, want 2", n)
	}
	if !tableExists(t, db, "kv") || !tableExists(t, db, "extra") {
		t.Error("expected kv and extra tables")
	}

	v, _ := r.CurrentVersion()
	if v != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", v)
	}

	var logged []string
	n, err = r.Apply(func(s string) { logged = append(logged, s) })
	if err != nil || n != 0 {
		t.Errorf("second Apply() = %d, %v; want 0, nil", n, err)
	}
	if len(logged) != 1 {
		t.Errorf("expected one up-to-date log line, got %v", logged)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, mapFS(map[string]string{
		"001_ok.sql":     "CREATE TABLE ok (id INTEGER);",
		"002_broken.sql": "CREATE TABLE broken (id INTEGER); NOT VALID SQL;",
	}), SQLite)

	n, err := r.Apply(nil)
	if err == nil {
		t.Fatal("Apply() should fail on broken migration")
	}
	if n != 1 {
		t.Errorf("applied = %d, want 1", n)
	}
	v, _ := r.CurrentVersion()
	if v != 1 {
		t.Errorf("CurrentVersion() = %d, want 1 after rollback", v)
	}
}

func TestValidateNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, mapFS(map[string]string{"001_init.sql": "SELECT 1;"}), SQLite)
	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 7"); err != nil {
		t.Fatalf("bump version: %v", err)
	}

	if err := r.Validate(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("Validate() error = %v, want ErrSchemaTooNew", err)
	}
	if _, err := r.Apply(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("Apply() error = %v, want ErrSchemaTooNew", err)
	}
}

func TestPostgresPlaceholder(t *testing.T) {
	if got := Postgres.Placeholder(3); got != "$3" {
		t.Errorf("Postgres.Placeholder(3) = %q", got)
	}
	if got := SQLite.Placeholder(3); got != "?" {
		t.Errorf("SQLite.Placeholder(3) = %q", got)
	}
}
