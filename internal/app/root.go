package app

import (
	"os"
	"path/filepath"
)

// FindRoot walks up from the working directory to the first directory holding
// input/artifact_mark. Without one the working directory is the root.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, "input", "artifact_mark")
		if st, err := os.Stat(probe); err == nil && st.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd, nil
}
