package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTracks()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	// File paths default to well-known names inside the data directory.
	if strings.TrimSpace(c.Paths.InputFile) == "" {
		c.Paths.InputFile = filepath.Join(c.Paths.DataDir, defaultInputFileName)
	} else if c.Paths.InputFile, err = expandPath(c.Paths.InputFile); err != nil {
		return fmt.Errorf("paths.input_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		c.Paths.OutputFile = filepath.Join(c.Paths.DataDir, defaultOutputFileName)
	} else if c.Paths.OutputFile, err = expandPath(c.Paths.OutputFile); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.UnresolvedLog) == "" {
		c.Paths.UnresolvedLog = filepath.Join(c.Paths.DataDir, defaultUnresolvedLogName)
	} else if c.Paths.UnresolvedLog, err = expandPath(c.Paths.UnresolvedLog); err != nil {
		return fmt.Errorf("paths.unresolved_log: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExcludedTracksFile) == "" {
		c.Paths.ExcludedTracksFile = filepath.Join(c.Paths.DataDir, defaultExcludedTracksName)
	} else if c.Paths.ExcludedTracksFile, err = expandPath(c.Paths.ExcludedTracksFile); err != nil {
		return fmt.Errorf("paths.excluded_tracks_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeTracks() {
	labels := make([]string, 0, len(c.Tracks.LabelPreference))
	for _, label := range c.Tracks.LabelPreference {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	c.Tracks.LabelPreference = labels
	if c.Tracks.MaxPerPart == 0 {
		c.Tracks.MaxPerPart = defaultMaxTracksPerPart
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
