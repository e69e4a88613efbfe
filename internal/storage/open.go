package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/lifeboost/internal/storage/postgres"
	"github.com/julianstephens/lifeboost/internal/storage/sqlite"
)

// MemoryLocation selects the in-memory backend.
const MemoryLocation = ":memory:"

// Open picks a backend from location: a PostgreSQL URI or DSN, a .json
// file, MemoryLocation, or otherwise a SQLite database path. The provider is
// returned unloaded. PostgreSQL strings given here must not embed a password.
func Open(location string) (Provider, error) {
	switch {
	case location == MemoryLocation:
		return NewMemoryStore(), nil
	case postgres.IsConnString(location):
		if _, err := postgres.ValidateConnString(location); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store the full string with 'lifeboost keyring set' or LIFEBOOST_DB_CONNECTION instead", err)
			}
			return nil, err
		}
		return postgres.New(location), nil
	}

	path, err := ExpandHome(location)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// OpenTrusted opens a PostgreSQL connection string from a trusted source
// (keyring or environment), where an embedded password is acceptable.
func OpenTrusted(connStr string) Provider {
	return postgres.New(connStr)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
