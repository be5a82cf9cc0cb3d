package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

type migration struct {
	name string
	sql  []byte
}

// RunMigrations applies the schema migrations in name order. When dir is
// set and holds .sql files they take precedence over the embedded set,
// which lets a deployment patch the schema without rebuilding.
func RunMigrations(db *sql.DB, dir string) error {
	migrations, err := collectMigrations(dir)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if len(m.sql) == 0 {
			continue
		}
		if _, err := db.Exec(string(m.sql)); err != nil {
			return fmt.Errorf("apply schema migration %s: %w", m.name, err)
		}
	}
	return nil
}

func collectMigrations(dir string) ([]migration, error) {
	if dir != "" {
		out, err := readMigrationDir(os.DirFS(dir))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read schema migrations from %s: %w", dir, err)
		}
		if len(out) > 0 {
			return out, nil
		}
	}
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema migrations: %w", err)
	}
	return readMigrationDir(sub)
}

func readMigrationDir(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var out []migration
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, migration{name: e.Name(), sql: data})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}
