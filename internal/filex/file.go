package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxTextFileSize caps how much resume text we are willing to read.
const maxTextFileSize = 1 << 20

// EnsureParentDir creates the directory holding path if it does not exist
// yet. A path without a directory component is a no-op.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadText reads a small UTF-8 text file and returns its trimmed contents.
// Files over 1 MiB are rejected.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxTextFileSize {
		return "", fmt.Errorf("%s: file too large (%d bytes)", path, info.Size())
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
