package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AppDirName is the directory created under the user config dir.
const AppDirName = "gme-app"

// Video extensions accepted by the create-project upload.
var VideoExtensions = []string{".mp4", ".mov", ".mkv", ".avi", ".webm"}

// EnsureDir creates the directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// AppDataDir returns the per-user directory for client state (persisted
// session). The directory is not created here.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Headless environments may lack HOME; fall back to the working dir.
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return "", fmt.Errorf("failed to resolve config dir: %w", err)
		}
		return filepath.Join(cwd, "."+AppDirName), nil
	}
	return filepath.Join(configDir, AppDirName), nil
}

// CheckVideoFile validates a file chosen for upload: it must exist, be a
// regular non-empty file and carry a known video extension.
func CheckVideoFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("video path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("video file not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("video path is a directory: %s", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("video file is empty: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range VideoExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("unsupported video format: %s", ext)
}
