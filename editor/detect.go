package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// fallbackEditors are the binaries PathSearch probes, in order of
// preference: feature-rich GUI editors first, then traditional terminal
// editors, then minimal editors as a last resort.
var fallbackEditors = []string{
	"code",     // VS Code
	"cursor",   // Cursor
	"windsurf", // Windsurf
	"zed",      // Zed
	"nvim",     // NeoVim
	"vim",      // Vim
	"hx",       // Helix
	"emacs",    // Emacs
	"subl",     // Sublime Text
	"nano",     // Nano
	"vi",       // Vi (last resort)
}

// SourceKind classifies how an editor was resolved.
type SourceKind int

const (
	// SourceEnvironment means an environment variable supplied the editor.
	SourceEnvironment SourceKind = iota
	// SourcePathSearch means a PATH probe over the fallback list found it.
	SourcePathSearch
	// SourceExplicit means the caller pinned the editor directly.
	SourceExplicit
	// SourceConfig means a caller-supplied config entry matched.
	SourceConfig
)

// Source records which mechanism produced a Resolved editor. It is
// diagnostic only and has no effect on the generated command.
type Source struct {
	Kind SourceKind
	// Var is the environment variable name for SourceEnvironment.
	Var string
	// Index is the position of the matching config for SourceConfig
	// (0 = highest priority).
	Index int
}

func (s Source) String() string {
	switch s.Kind {
	case SourceEnvironment:
		return fmt.Sprintf("environment ($%s)", s.Var)
	case SourcePathSearch:
		return "path search"
	case SourceExplicit:
		return "explicit"
	case SourceConfig:
		return fmt.Sprintf("config[%d]", s.Index)
	}
	return fmt.Sprintf("SourceKind(%d)", int(s.Kind))
}

// Resolved is the outcome of one resolution call: a concrete binary, its
// detected kind, any extra arguments carried by the source (e.g. "--wait"
// from $EDITOR="code --wait"), and provenance. It is created fresh per call
// and never mutated.
type Resolved struct {
	// Binary is the editor binary name or path to invoke.
	Binary string
	// Kind is the detected editor kind.
	Kind Kind
	// Args are extra arguments from the source, placed before the
	// positioning arguments.
	Args []string
	// Source records how the editor was resolved.
	Source Source
}

// IsTerminal reports whether the resolved editor needs the parent stdio.
func (r Resolved) IsTerminal() bool {
	return r.Kind.IsTerminal()
}

func (r Resolved) String() string {
	return fmt.Sprintf("%s (%s, via %s)", r.Binary, r.Kind, r.Source)
}

// resolver carries the ambient lookups so resolution stays a pure function
// of its inputs and tests can substitute fakes.
type resolver struct {
	lookupEnv func(string) (string, bool)
	lookPath  func(string) (string, error)
}

func defaultResolver() resolver {
	return resolver{
		lookupEnv: os.LookupEnv,
		lookPath:  exec.LookPath,
	}
}

// Resolve scans the given sources in order and returns the first editor
// that can be used. Nothing is cached: every call re-reads the environment
// and re-probes PATH. Returns ErrNoEditorFound when every source comes up
// empty.
func Resolve(order []ResolveFrom, configs []Config) (Resolved, error) {
	return defaultResolver().resolve(order, configs)
}

// Detect resolves the default editor without opening anything, using the
// environment-only order: $VISUAL, $EDITOR, then PATH search.
func Detect() (Resolved, error) {
	return defaultResolver().resolve(EnvOnlyResolveOrder, nil)
}

func (r resolver) resolve(order []ResolveFrom, configs []Config) (Resolved, error) {
	for _, source := range order {
		switch source {
		case FromConfig:
			for i, cfg := range configs {
				if ed, ok := r.tryConfig(cfg, i); ok {
					return ed, nil
				}
			}
		case FromVisual:
			if ed, ok := r.tryEnv("VISUAL"); ok {
				return ed, nil
			}
		case FromEditor:
			if ed, ok := r.tryEnv("EDITOR"); ok {
				return ed, nil
			}
		case FromPathSearch:
			if ed, ok := r.searchPath(); ok {
				return ed, nil
			}
		}
	}
	return Resolved{}, ErrNoEditorFound
}

// tryConfig accepts the config if its named binary, or its kind's default
// binary, is present on PATH. The named binary is more specific and wins.
func (r resolver) tryConfig(cfg Config, index int) (Resolved, bool) {
	if cfg.Editor != "" {
		if _, err := r.lookPath(cfg.Editor); err == nil {
			return Resolved{
				Binary: cfg.Editor,
				Kind:   KindFromBinary(cfg.Editor),
				Args:   cfg.Args,
				Source: Source{Kind: SourceConfig, Index: index},
			}, true
		}
	}
	if cfg.Kind != KindUnknown {
		binary := cfg.Kind.DefaultBinary()
		if _, err := r.lookPath(binary); err == nil {
			return Resolved{
				Binary: binary,
				Kind:   cfg.Kind,
				Args:   cfg.Args,
				Source: Source{Kind: SourceConfig, Index: index},
			}, true
		}
	}
	return Resolved{}, false
}

// tryEnv reads an editor from an environment variable. The value is
// shell-like text: the first token is the binary, the rest become extra
// arguments, so $EDITOR="code --wait" carries its flag through. The binary
// is taken on faith without a PATH probe; if the user points the variable
// at something absent, the spawn error will say so.
func (r resolver) tryEnv(name string) (Resolved, bool) {
	value, ok := r.lookupEnv(name)
	if !ok {
		return Resolved{}, false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Resolved{}, false
	}

	tokens := splitCommand(value)
	if len(tokens) == 0 {
		return Resolved{}, false
	}

	return Resolved{
		Binary: tokens[0],
		Kind:   KindFromBinary(tokens[0]),
		Args:   tokens[1:],
		Source: Source{Kind: SourceEnvironment, Var: name},
	}, true
}

// splitCommand tokenizes shell-like text respecting quotes, so a quoted
// path with spaces stays one token. Falls back to whitespace fields if the
// quoting is malformed.
func splitCommand(s string) []string {
	if tokens, err := shellquote.Split(s); err == nil {
		return tokens
	}
	return strings.Fields(s)
}

// searchPath probes the fallback list (plus any platform-specific entries)
// and accepts the first binary present.
func (r resolver) searchPath() (Resolved, bool) {
	candidates := make([]string, 0, len(fallbackEditors)+len(platformFallbackEditors))
	candidates = append(candidates, fallbackEditors...)
	candidates = append(candidates, platformFallbackEditors...)

	for _, binary := range candidates {
		if _, err := r.lookPath(binary); err == nil {
			return Resolved{
				Binary: binary,
				Kind:   KindFromBinary(binary),
				Source: Source{Kind: SourcePathSearch},
			}, true
		}
	}
	return Resolved{}, false
}

// findBinary pins a specific binary, bypassing resolution order. The
// binary must still be present on PATH.
func (r resolver) findBinary(binary string) (Resolved, error) {
	if _, err := r.lookPath(binary); err != nil {
		return Resolved{}, &NotFoundError{Binary: binary}
	}
	return Resolved{
		Binary: binary,
		Kind:   KindFromBinary(binary),
		Source: Source{Kind: SourceExplicit},
	}, nil
}

// findKind pins an editor kind, resolving to its default binary.
func (r resolver) findKind(kind Kind) (Resolved, error) {
	binary := kind.DefaultBinary()
	if _, err := r.lookPath(binary); err != nil {
		return Resolved{}, &NotFoundError{Binary: binary}
	}
	return Resolved{
		Binary: binary,
		Kind:   kind,
		Source: Source{Kind: SourceExplicit},
	}, nil
}
