// Package cliconfig loads the optional opn config file.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/VoxDroid/opn/editor"
)

// File is the on-disk shape of ~/.opn/config.yaml.
//
//	editors:
//	  - editor: nvim
//	    args: [--noplugin]
//	  - kind: VsCode
type File struct {
	// Editors are preferences in priority order; the first entry whose
	// binary resolves wins.
	Editors []editor.Config `yaml:"editors"`
}

// Dir returns the directory used to store opn data.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".opn"), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads the config file and returns its editor preferences in order.
// A missing file is not an error; malformed yaml is.
func Load() ([]editor.Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads editor preferences from an explicit path.
func LoadFrom(path string) ([]editor.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Editors, nil
}
