package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds settings that can come from a YAML file. Flags given on the
// command line override them.
type config struct {
	// Prompt is the interactive shell prompt.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb for results.
	Format string `yaml:"fmt"`
	// Round is the number of decimal places to round results to. Negative
	// disables rounding.
	Round int `yaml:"round"`
	// History is the shell history file. Empty disables saving history.
	History string `yaml:"history"`
	// Echo prints the evaluation steps of each expression.
	Echo bool `yaml:"echo"`
}

// maxRound is the largest number of decimal places results can be rounded to.
const maxRound = 100

func defaultConfig() config {
	return config{
		Prompt: "expr> ",
		Format: "%g",
		Round:  -1,
	}
}

// check reports settings that cannot be used.
func (c config) check() error {
	if c.Round > maxRound {
		return fmt.Errorf("cannot round to %d places, max is %d", c.Round, maxRound)
	}
	return nil
}

// readConfig decodes a YAML config over the defaults. Unknown keys are
// errors. An empty document gives the defaults.
func readConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, err
	}
	return cfg, nil
}

// loadConfig reads a YAML config file.
func loadConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", name, err)
	}
	return cfg, nil
}
