package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory configuration.
type Paths struct {
	DataDir            string `toml:"data_dir"`
	InputFile          string `toml:"input_file"`
	OutputFile         string `toml:"output_file"`
	UnresolvedLog      string `toml:"unresolved_log"`
	ExcludedTracksFile string `toml:"excluded_tracks_file"`
	LogDir             string `toml:"log_dir"`
}

// Filters contains the coarse selection thresholds applied during curation.
type Filters struct {
	// MinWorksPerComposer drops composers with fewer surviving works.
	MinWorksPerComposer int `toml:"min_works_per_composer"`
	// MinBirthYear drops composers born before this year.
	MinBirthYear int `toml:"min_birth_year"`
	// MinRecordingsPerPart drops leaf parts with fewer recordings.
	MinRecordingsPerPart int `toml:"min_recordings_per_part"`
	// MinimumWSS is the absolute floor a work's significance score must meet.
	MinimumWSS float64 `toml:"minimum_wss"`
	// MaxTreeDepth bounds work-tree nesting; deeper trees are data defects.
	MaxTreeDepth int `toml:"max_tree_depth"`
}

// Scoring contains the significance-score parameters and the dynamic
// part-filter anchors.
type Scoring struct {
	// Alpha balances peak vs. average part popularity in the WSS formula.
	// 0.0 = pure average; 1.0 = pure peak.
	Alpha float64 `toml:"alpha"`
	// WSSLowerBound is the WSS at which the part score requirement is highest.
	WSSLowerBound float64 `toml:"wss_lower_bound"`
	// WSSUpperBound is the WSS at which the part score requirement is lowest.
	WSSUpperBound float64 `toml:"wss_upper_bound"`
	// PartScoreAtLowerWSS is the required part score for works at or below
	// the lower bound.
	PartScoreAtLowerWSS float64 `toml:"part_score_at_lower_wss"`
	// PartScoreAtUpperWSS is the required part score for works at or above
	// the upper bound.
	PartScoreAtUpperWSS float64 `toml:"part_score_at_upper_wss"`
}

// Tracks contains representative-track selection settings.
type Tracks struct {
	MaxPerPart      int      `toml:"max_per_part"`
	LabelPreference []string `toml:"label_preference"`
}

// Exclusions contains manual exclusion lists maintained by curators.
type Exclusions struct {
	// Composers lists display names to exclude from the final output.
	Composers []string `toml:"composers"`
	// Works lists work identifiers to exclude regardless of score.
	Works []string `toml:"works"`
}

// Overrides contains curator-supplied corrections applied during curation.
type Overrides struct {
	// WSS maps work identifiers to fixed significance scores that replace
	// the computed value.
	WSS map[string]float64 `toml:"wss"`
	// ComposerTypes maps composer identifiers to the category their
	// untyped works should default to.
	ComposerTypes map[string]string `toml:"composer_types"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for LisztNUp.
//
// Configuration sections by subsystem:
//   - Paths: input forest, output artifacts, and log locations
//   - Filters: coarse selection thresholds
//   - Scoring: WSS parameters and dynamic part-filter anchors
//   - Tracks: representative-track selection
//   - Exclusions: manual composer/work exclusion lists
//   - Overrides: curator corrections (fixed WSS values, untyped-work defaults)
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Filters    Filters    `toml:"filters"`
	Scoring    Scoring    `toml:"scoring"`
	Tracks     Tracks     `toml:"tracks"`
	Exclusions Exclusions `toml:"exclusions"`
	Overrides  Overrides  `toml:"overrides"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lisztnup/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lisztnup.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the pipeline writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir, filepath.Dir(c.Paths.OutputFile)}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ExcludedComposerSet returns the excluded composer names as a lookup set.
func (c *Config) ExcludedComposerSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Exclusions.Composers))
	for _, name := range c.Exclusions.Composers {
		set[name] = struct{}{}
	}
	return set
}

// ExcludedWorkSet returns the excluded work identifiers as a lookup set.
func (c *Config) ExcludedWorkSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Exclusions.Works))
	for _, gid := range c.Exclusions.Works {
		set[gid] = struct{}{}
	}
	return set
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
