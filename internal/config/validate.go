package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRules(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.TargetDir == "" {
		return errors.New("paths.target_dir must be set")
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateRules() error {
	if c.Rules.OldAfterDays <= 0 {
		return errors.New("rules.old_after_days must be positive")
	}
	// Building the ruleset exercises the policy and every extension override.
	if _, err := c.Ruleset(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}
