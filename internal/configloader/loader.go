// Package configloader discovers and loads the optional .snipsync.yaml
// configuration file.
package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configNames are the file names probed during upward discovery, in
// precedence order.
var configNames = []string{".snipsync.yaml", ".snipsync.yml"}

// Config is the on-disk configuration. CLI flags take precedence over
// every field; merging happens in the CLI layer, which only overrides
// fields whose flags were explicitly set.
type Config struct {
	// Ignore lists glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Include restricts directory walks to matching paths.
	Include []string `yaml:"include"`

	// Extensions overrides the default document extensions.
	Extensions []string `yaml:"extensions"`

	// Jobs is the worker count (0 = one per CPU).
	Jobs int `yaml:"jobs"`

	// GuessLang enables content-based language guessing.
	GuessLang bool `yaml:"guess_lang"`
}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory the upward search starts from.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is the --config value. When set, discovery is
	// skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult is the loaded configuration plus its origin.
type LoadResult struct {
	Config Config

	// LoadedFrom is the path of the file that was read, or "" when no
	// configuration file exists.
	LoadedFrom string
}

// Load resolves the configuration file and parses it strictly; unknown
// keys are an error so typos do not silently disable options.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	path := opts.ExplicitPath
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			var err error
			workDir, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
		}
		path = discover(workDir)
		if path == "" {
			return result, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if opts.ExplicitPath == "" && errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&result.Config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	result.LoadedFrom = path
	return result, nil
}

// discover searches workDir and its ancestors for a config file.
func discover(workDir string) string {
	dir := workDir
	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
