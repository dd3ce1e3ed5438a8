package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configEnvVar = "BASIC_CONFIG"

const configFilename = ".basic.yaml"

func defaultSettings() settings {

	return settings{
		Prompt:      myPrompt,
		InputPrompt: inputPrompt,
		History:     true,
	}
}

//
// Where to look for the settings file.  An explicit $BASIC_CONFIG
// must exist; the file in the home directory is optional
//

func settingsPath() (string, bool) {

	if path := os.Getenv(configEnvVar); path != "" {
		return path, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(home, configFilename), false
}

//
// Load settings from a YAML file.  Keys not present in the file keep
// their defaults, unknown keys are an error.  On any error the
// defaults are returned along with it
//

func loadSettings(path string, required bool) (settings, error) {

	cfg := defaultSettings()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	loaded := cfg
	if err := decoder.Decode(&loaded); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return loaded, nil
}

//
// Push the loaded settings into the interpreter flags
//

func applySettings(cfg settings) {

	g.settings = cfg
	g.printStats = cfg.Stats
	g.traceExec = cfg.Trace.Exec
	g.traceVars = cfg.Trace.Vars
	g.traceDump = cfg.Trace.Dump
}
