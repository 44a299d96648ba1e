package logging

import (
	"os"
	"path/filepath"
)

// LogDir returns the directory strfind logs into (~/.strfind/logs).
// Falls back to a temp directory when the home directory is unknown.
func LogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "strfind", "logs")
	}
	return filepath.Join(home, ".strfind", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(LogDir(), "strfind.log")
}

// EnsureLogDir creates the log directory if it does not exist.
func EnsureLogDir() error {
	return os.MkdirAll(LogDir(), 0o755)
}
