package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBundledMigrationsValidate(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("bundled migrations failed validation: %v", err)
	}
}

func TestBundledMigrationsCoverCoreTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	var all strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read migration %s: %v", e.Name(), err)
		}
		all.Write(b)
	}

	for _, table := range []string{"users", "orders", "stock_data"} {
		if !strings.Contains(all.String(), "CREATE TABLE "+table) {
			t.Fatalf("expected a migration creating table %q", table)
		}
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "001_bad.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename to fail validation")
	}
}
