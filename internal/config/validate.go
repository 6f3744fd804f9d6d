package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Policy inconsistencies are
// programming-time contract violations and abort the run before any data is
// touched.
func (c *Config) Validate() error {
	if err := c.validateFilters(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateTracks(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFilters() error {
	if err := ensurePositiveMap(map[string]int{
		"filters.min_works_per_composer":  c.Filters.MinWorksPerComposer,
		"filters.min_recordings_per_part": c.Filters.MinRecordingsPerPart,
		"filters.max_tree_depth":          c.Filters.MaxTreeDepth,
	}); err != nil {
		return err
	}
	if c.Filters.MinimumWSS < 0 {
		return errors.New("filters.minimum_wss must not be negative")
	}
	return nil
}

func (c *Config) validateScoring() error {
	if c.Scoring.Alpha < 0 || c.Scoring.Alpha > 1 {
		return errors.New("scoring.alpha must be between 0 and 1")
	}
	if c.Scoring.WSSUpperBound <= c.Scoring.WSSLowerBound {
		return errors.New("scoring.wss_upper_bound must be greater than scoring.wss_lower_bound")
	}
	for key, score := range map[string]float64{
		"scoring.part_score_at_lower_wss": c.Scoring.PartScoreAtLowerWSS,
		"scoring.part_score_at_upper_wss": c.Scoring.PartScoreAtUpperWSS,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%s must be between 0 and 100", key)
		}
	}
	if c.Scoring.PartScoreAtLowerWSS < c.Scoring.PartScoreAtUpperWSS {
		return errors.New("scoring.part_score_at_lower_wss must not be below scoring.part_score_at_upper_wss")
	}
	return nil
}

func (c *Config) validateTracks() error {
	if c.Tracks.MaxPerPart <= 0 {
		return errors.New("tracks.max_per_part must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
