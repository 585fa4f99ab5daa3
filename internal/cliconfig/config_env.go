package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RISKGRID_*).
// Flags that were explicitly set (changed map) take precedence.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("RISKGRID_INPUT"), &cfg.Input)
	s.setString("log-level", os.Getenv("RISKGRID_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("RISKGRID_LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setIntFromString("factor", os.Getenv("RISKGRID_FACTOR"), &cfg.Factor); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("RISKGRID_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("parallel", os.Getenv("RISKGRID_PARALLEL"), &cfg.Parallel)
	s.setBoolFromString("show-path", os.Getenv("RISKGRID_SHOW_PATH"), &cfg.ShowPath)
	s.setBoolFromString("watch", os.Getenv("RISKGRID_WATCH"), &cfg.Watch)

	return nil
}
