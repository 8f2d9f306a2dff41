package histstore

import (
	"os"
	"path/filepath"
)

// DefaultSQLitePath resolves where the SQLite history database lives when no
// connection string is configured: ~/.statscard/history.db, falling back to
// the working directory when the home directory is unknown.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	dir := filepath.Join(home, ".statscard")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "history.db"
	}
	return filepath.Join(dir, "history.db")
}
