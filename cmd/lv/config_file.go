package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/litview/format"

	"github.com/goccy/go-yaml"
)

// FileConfig holds defaults from $LV_CONFIG or ~/.config/lv/config.yaml:
//
//	dialect: python
//	output: json
//	color: false
//	depth: 3
type FileConfig struct {
	Dialect string `yaml:"dialect"`
	Output  string `yaml:"output"`
	Color   *bool  `yaml:"color"`
	Depth   *int   `yaml:"depth"`

	dialect, output *format.Dialect
}

func configPath() string {
	if p := os.Getenv("LV_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lv", "config.yaml")
}

// loadFileConfig reads the config file at path. A missing file is an
// empty config.
func loadFileConfig(path string) (*FileConfig, error) {
	res := &FileConfig{}
	if path == "" {
		return res, nil
	}
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if res.Dialect != "" {
		dlct, err := format.ParseDialect(res.Dialect)
		if err != nil {
			return nil, fmt.Errorf("%s: dialect: %w", path, err)
		}
		res.dialect = &dlct
	}
	if res.Output != "" {
		dlct, err := format.ParseDialect(res.Output)
		if err != nil {
			return nil, fmt.Errorf("%s: output: %w", path, err)
		}
		res.output = &dlct
	}
	return res, nil
}
