package uplink

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveArtifact persists a successful outcome under its resolved name inside
// dir and returns the final path. The bytes are staged through a temporary
// file in the same directory and renamed into place; the temporary file is
// released on every exit path, exactly once (after a successful rename the
// deferred remove is a no-op on the vacated name).
func SaveArtifact(outcome *Outcome, dir string) (string, error) {
	name := filepath.Base(outcome.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = DefaultArtifactName
	}

	tmp, err := os.CreateTemp(dir, ".uplink-*")
	if err != nil {
		return "", fmt.Errorf("failed to stage download: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(outcome.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write download: %w", err)
	}

	target := filepath.Join(dir, name)
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("failed to save download: %w", err)
	}
	return target, nil
}
