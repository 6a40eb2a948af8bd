// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds the settings read from the optional YAML configuration file.
// Command line flags take precedence.
//
type config struct {
	Presses    int    `yaml:"presses"`
	Sink       string `yaml:"sink"`
	MaxPresses uint64 `yaml:"max_presses"`
	MaxPulses  uint64 `yaml:"max_pulses"`
	LogLevel   string `yaml:"log_level"`
	Metrics    bool   `yaml:"metrics"`
}

func defaultConfig() config {
	return config{
		Presses:    1000,
		Sink:       pulsesim.DefaultSink,
		MaxPresses: pulsesim.DefaultMaxPresses,
		MaxPulses:  pulsesim.DefaultMaxPulses,
		LogLevel:   "info",
	}
}

// loadConfig reads the configuration file at path. Missing keys keep their
// default value. An empty path returns the defaults.
//
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Presses < 0 {
		return cfg, errors.Errorf("config %s: presses must not be negative", path)
	}
	return cfg, nil
}
