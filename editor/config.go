package editor

import (
	"fmt"
)

// ResolveFrom names a source the resolver may consult. Callers supply an
// ordered slice of these to control priority; the first source that yields
// a usable editor wins and later sources are never probed.
type ResolveFrom int

const (
	// FromConfig checks configs passed via WithConfig, in the order added.
	FromConfig ResolveFrom = iota
	// FromVisual checks the $VISUAL environment variable.
	FromVisual
	// FromEditor checks the $EDITOR environment variable.
	FromEditor
	// FromPathSearch probes PATH for known editor binaries.
	FromPathSearch
)

func (r ResolveFrom) String() string {
	switch r {
	case FromConfig:
		return "config"
	case FromVisual:
		return "visual"
	case FromEditor:
		return "editor"
	case FromPathSearch:
		return "path"
	}
	return fmt.Sprintf("ResolveFrom(%d)", int(r))
}

// DefaultResolveOrder is used when configs are present:
// Config, Visual, Editor, PathSearch.
var DefaultResolveOrder = []ResolveFrom{FromConfig, FromVisual, FromEditor, FromPathSearch}

// EnvOnlyResolveOrder skips configs entirely: Visual, Editor, PathSearch.
var EnvOnlyResolveOrder = []ResolveFrom{FromVisual, FromEditor, FromPathSearch}

// Config is an editor preference supplied by the calling application,
// typically decoded from its own config file. The library never reads
// files itself.
//
// Either Editor (a binary name or path) or Kind may be set; Editor is the
// more specific and is checked first. Args are prepended to the generated
// argument vector.
type Config struct {
	// Editor is a binary name or path, e.g. "nvim" or
	// "/usr/local/bin/code". It must resolve on PATH for this config to
	// be used.
	Editor string `yaml:"editor,omitempty" json:"editor,omitempty"`

	// Kind selects an editor by kind; its default binary must resolve on
	// PATH. In YAML this is a name accepted by KindFromName, e.g.
	// "NeoVim" or "vs-code".
	Kind Kind `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Args are extra arguments passed to the editor before the
	// positioning arguments.
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

// IsEmpty reports whether the config selects no editor at all.
func (c Config) IsEmpty() bool {
	return c.Editor == "" && c.Kind == KindUnknown
}

// MarshalText encodes the kind as its canonical name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

// UnmarshalText decodes a kind from any spelling KindFromName accepts.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := KindFromName(string(text))
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("unknown editor kind %q", string(text))}
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes the kind as its canonical name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.Name(), nil
}

// UnmarshalYAML decodes a kind from a YAML scalar such as `kind: NeoVim`.
func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}
