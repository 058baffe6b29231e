package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v3"
)

// Modes of running a program file.
const (
	ModeInterpret = "interpret"
	ModeCompile   = "compile"
	ModeBoth      = "both"
)

// Config holds the settings of D.REPL.
type Config struct {
	Trace  string `yaml:"trace"`
	Mode   string `yaml:"mode"`
	Prompt string `yaml:"prompt"`
	Init   string `yaml:"init"`
}

func defaultConfig() Config {
	return Config{
		Trace:  "Error",
		Mode:   ModeBoth,
		Prompt: "dendron> ",
	}
}

// loadConfig reads a YAML configuration file. Keys missing in the file keep
// their current values in conf.
func loadConfig(filename string, conf *Config) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return fmt.Errorf("cannot parse configuration %s: %w", filename, err)
	}
	return conf.validate()
}

func (conf *Config) validate() error {
	conf.Mode = strings.ToLower(strings.TrimSpace(conf.Mode))
	switch conf.Mode {
	case ModeInterpret, ModeCompile, ModeBoth:
		return nil
	}
	return fmt.Errorf("unknown mode %q, expected one of %s, %s, %s",
		conf.Mode, ModeInterpret, ModeCompile, ModeBoth)
}
