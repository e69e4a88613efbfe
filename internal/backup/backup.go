// Package backup keeps rotating snapshots of the SQLite database next to it.
package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
)

const (
	DirName    = "backups"
	filePrefix = constants.AppName + "-"
	fileSuffix = ".db"
	stampFmt   = "20060102-150405"
)

var ErrNoDatabase = errors.New("database does not exist")

type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

type Manager struct {
	dbPath    string
	backupDir string
	keep      int
	clock     clock.Clock
}

// NewManager manages backups of the database at dbPath, kept in a backups
// directory beside it. clk may be nil.
func NewManager(dbPath string, clk clock.Clock) *Manager {
	if clk == nil {
		clk = clock.System{}
	}
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), DirName),
		keep:      constants.MaxBackups,
		clock:     clk,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the database and prunes the oldest snapshots beyond the
// retention limit.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("failed to rotate old backups", "dir", m.backupDir, "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNoDatabase, m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextName()
	if err != nil {
		return "", err
	}
	if err := snapshot(m.dbPath, path); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Info("database backed up", "path", path)
	return path, nil
}

// nextName returns an unused file name for the current second, adding a
// counter when several backups land in the same second.
func (m *Manager) nextName() (string, error) {
	stamp := m.clock.Now().UTC().Format(stampFmt)
	path := filepath.Join(m.backupDir, filePrefix+stamp+fileSuffix)
	for n := 1; fileExists(path); n++ {
		if n > 100 {
			return "", errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", filePrefix, stamp, n, fileSuffix))
	}
	return path, nil
}

// snapshot writes a consistent copy of src to dst with VACUUM INTO.
func snapshot(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verify(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	_, err = db.Exec("VACUUM INTO ?", dst)
	return err
}

// List returns the backups, newest first. Unrecognised files are skipped.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName extracts the timestamp from lifeboost-YYYYMMDD-HHMMSS[-N].db.
func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	if len(stamp) > len(stampFmt) {
		counter, ok := strings.CutPrefix(stamp[len(stampFmt):], "-")
		if !ok {
			return time.Time{}, false
		}
		if _, err := strconv.Atoi(counter); err != nil {
			return time.Time{}, false
		}
		stamp = stamp[:len(stampFmt)]
	}
	ts, err := time.Parse(stampFmt, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the database with the backup at path. The current
// database, if any, is snapshotted first; that snapshot's path is returned.
// The caller must close its own connection beforehand.
func (m *Manager) Restore(path string) (string, error) {
	if !fileExists(path) {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := verifyFile(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if fileExists(m.dbPath) {
		p, err := m.create()
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		previous = p
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return "", fmt.Errorf("failed to restore database: %w", err)
	}
	logger.Info("database restored", "from", path)
	return previous, nil
}

func verifyFile(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verify(db)
}

// verify checks that db is readable and carries the key-value table.
func verify(db *sql.DB) error {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv'").Scan(&n)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("not a lifeboost database")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
