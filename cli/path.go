package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/strata/pkg"
)

// configPath returns the path of the optional JSON configuration file
// holding default flag values.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, pkg.Name, "config.json")
}

// cacheDir returns the per-user cache directory for strata artifacts such as
// profiling output.
func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, pkg.Name)
}
