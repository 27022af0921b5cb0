package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var configFilenames = []string{
	".docfront.yaml",
	".docfront.yml",
	".docfront.toml",
	".docfront.json",
}

// Find returns the configuration file to use: explicitPath when given,
// otherwise the first configuration file found in startDir or one of its
// parents. It returns "" when there is none.
func Find(startDir, explicitPath string) (string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", err
		}
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", explicit)
		}
		return explicit, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
