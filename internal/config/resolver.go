package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the per-user and per-repository config file name
	ConfigFileName = ".stackyconfig"
	// SystemConfigPath is the machine-wide config file
	SystemConfigPath = "/etc/stackyconfig"
	// ConfigPathEnv names an extra config file read after all others
	ConfigPathEnv = "STACKY_CONFIG"
)

// DefaultPaths returns the candidate config files in precedence order, lowest first:
// system, user home, repository top level, then $STACKY_CONFIG.
// repoRoot may be empty when running outside a repository.
func DefaultPaths(repoRoot string) []string {
	paths := []string{SystemConfigPath}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ConfigFileName))
	}
	if repoRoot != "" {
		paths = append(paths, filepath.Join(repoRoot, ConfigFileName))
	}
	if explicit := os.Getenv(ConfigPathEnv); explicit != "" {
		paths = append(paths, explicit)
	}
	return paths
}

// Load folds the given files over the defaults. Missing files are skipped;
// the first malformed file stops resolution with a ConfigurationError.
func Load(paths ...string) (*StackyConfig, error) {
	cfg := NewStackyConfig()
	for _, path := range paths {
		if err := cfg.ReadOneConfig(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// PathStatus describes one candidate config file.
type PathStatus struct {
	Path    string
	Present bool
}

// DescribePaths reports which of the candidate files exist.
func DescribePaths(paths []string) []PathStatus {
	statuses := make([]PathStatus, 0, len(paths))
	for _, path := range paths {
		_, err := os.Stat(path)
		statuses = append(statuses, PathStatus{Path: path, Present: err == nil})
	}
	return statuses
}
