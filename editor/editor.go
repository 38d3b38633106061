package editor

import (
	"context"
	"os/exec"
)

// Open opens a file in the default editor, detected from $VISUAL, $EDITOR
// or a PATH search. For terminal editors the call blocks until the editor
// exits.
func Open(file string) error {
	return New().File(file).Open()
}

// OpenAt opens a file at a 1-indexed line number.
func OpenAt(file string, line int) error {
	return New().File(file).Line(line).Open()
}

// OpenAtPosition opens a file at a 1-indexed line and column.
func OpenAtPosition(file string, line, column int) error {
	return New().File(file).Line(line).Column(column).Open()
}

// Builder configures how a file is opened. Zero or more configs, an
// explicit editor pin and a custom resolution order can be combined; see
// the individual methods. Builders are single-use and not safe for
// concurrent mutation.
type Builder struct {
	file      string
	hasFile   bool
	line      int
	hasLine   bool
	column    int
	hasColumn bool
	wait      bool

	kind      Kind
	hasKind   bool
	binary    string
	hasBinary bool

	configs []Config
	order   []ResolveFrom

	res resolver
	run runFunc
}

// runFunc runs a prepared command and returns its terminal error. Split
// out so tests can observe the command without spawning anything.
type runFunc func(cmd *exec.Cmd) error

// New returns a builder with default resolution behavior.
func New() *Builder {
	return &Builder{
		res: defaultResolver(),
		run: func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// File sets the file to open. Required.
func (b *Builder) File(path string) *Builder {
	b.file = path
	b.hasFile = true
	return b
}

// Line sets the 1-indexed line to open at. Editors without line support
// ignore it.
func (b *Builder) Line(line int) *Builder {
	b.line = line
	b.hasLine = true
	return b
}

// Column sets the 1-indexed column to open at. Only honored together with
// Line, and only by editors with column support.
func (b *Builder) Column(column int) *Builder {
	b.column = column
	b.hasColumn = true
	return b
}

// Wait asks the editor to block until the file is closed. Editors without
// wait support ignore it; terminal editors block naturally.
func (b *Builder) Wait(wait bool) *Builder {
	b.wait = wait
	return b
}

// Editor pins a specific editor kind, bypassing resolution order. The
// kind's default binary must still be present on PATH.
func (b *Builder) Editor(kind Kind) *Builder {
	b.kind = kind
	b.hasKind = true
	b.hasBinary = false
	return b
}

// EditorBinary pins a specific binary name or path, bypassing resolution
// order. Useful for editors outside the known catalog.
func (b *Builder) EditorBinary(binary string) *Builder {
	b.binary = binary
	b.hasBinary = true
	b.hasKind = false
	return b
}

// WithConfig appends an editor preference to be checked during
// resolution. Configs are checked in the order added, earlier entries
// taking strict priority.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.configs = append(b.configs, cfg)
	return b
}

// ResolveOrder overrides the order in which sources are consulted. Without
// an override, DefaultResolveOrder applies when configs were added and
// EnvOnlyResolveOrder otherwise.
func (b *Builder) ResolveOrder(order ...ResolveFrom) *Builder {
	b.order = order
	return b
}

// Detect resolves the editor this builder would use, without spawning
// anything.
func (b *Builder) Detect() (Resolved, error) {
	return b.resolveEditor()
}

// Open validates the builder, resolves the editor and spawns it. Blocks
// until the editor process exits; GUI editors usually detach immediately
// unless asked to wait.
func (b *Builder) Open() error {
	return b.OpenContext(context.Background())
}

// OpenContext is Open with a context applied to the spawned process.
func (b *Builder) OpenContext(ctx context.Context) error {
	if !b.hasFile {
		return ErrNoFileSpecified
	}
	if b.hasLine && b.line < 1 {
		return ErrInvalidPosition
	}
	if b.hasColumn && b.column < 1 {
		return ErrInvalidPosition
	}

	ed, err := b.resolveEditor()
	if err != nil {
		return err
	}

	cmd := Command(ctx, ed, b.file, b.positionLine(), b.positionColumn(), b.wait)
	if err := b.run(cmd); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if code := exitErr.ExitCode(); code >= 0 {
				return &ExitError{Binary: ed.Binary, Status: code}
			}
			return &TerminatedError{Binary: ed.Binary}
		}
		return &SpawnError{Binary: ed.Binary, Err: err}
	}
	return nil
}

func (b *Builder) positionLine() int {
	if b.hasLine {
		return b.line
	}
	return 0
}

func (b *Builder) positionColumn() int {
	if b.hasColumn {
		return b.column
	}
	return 0
}

// resolveEditor picks the editor per the builder's settings: an explicit
// pin wins outright; otherwise the resolution order is scanned.
func (b *Builder) resolveEditor() (Resolved, error) {
	if b.hasBinary {
		return b.res.findBinary(b.binary)
	}
	if b.hasKind {
		return b.res.findKind(b.kind)
	}

	order := b.order
	if order == nil {
		if len(b.configs) > 0 {
			order = DefaultResolveOrder
		} else {
			order = EnvOnlyResolveOrder
		}
	}
	return b.res.resolve(order, b.configs)
}
