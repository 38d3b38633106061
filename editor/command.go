package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// formatFunc builds the positioning arguments for one editor family.
// line and column are 1-indexed; 0 means "not set". By the time a
// formatFunc runs, column without line has already been dropped.
type formatFunc func(file string, line, column int, wait bool) []string

// formatters is the dispatch table from kind to argument syntax. Every
// concrete kind must appear here; kinds without an entry fall back to the
// bare file path.
var formatters = map[Kind]formatFunc{
	KindVsCode:         gotoArgs,
	KindVsCodeInsiders: gotoArgs,
	KindVSCodium:       gotoArgs,
	KindCursor:         gotoArgs,
	KindWindsurf:       gotoArgs,

	KindVim:    vimArgs,
	KindNeoVim: vimArgs,
	KindVi:     vimArgs,
	KindGVim:   vimArgs,

	KindEmacs:       emacsArgs,
	KindEmacsClient: emacsArgs,

	KindSublime: colonArgs,
	KindZed:     colonArgs,
	KindAtom:    colonArgs,
	KindHelix:   helixArgs,
	KindKate:    kateArgs,

	KindNano: nanoArgs,

	KindTextMate: lineFlagArgs,
	KindXcode:    lineFlagArgs,

	KindNotepadPlusPlus: notepadPlusPlusArgs,
	KindNotepad:         fileOnlyArgs,

	KindIntelliJ:      jetbrainsArgs,
	KindWebStorm:      jetbrainsArgs,
	KindPhpStorm:      jetbrainsArgs,
	KindPyCharm:       jetbrainsArgs,
	KindRubyMine:      jetbrainsArgs,
	KindGoLand:        jetbrainsArgs,
	KindCLion:         jetbrainsArgs,
	KindRider:         jetbrainsArgs,
	KindDataGrip:      jetbrainsArgs,
	KindAndroidStudio: jetbrainsArgs,

	KindUnknown: fileOnlyArgs,
}

// FormatArgs builds the argument vector that opens file at the given
// position in an editor of the given kind. line and column are 1-indexed;
// pass 0 for "not set". A column without a line is always dropped, since a
// position needs a line anchor. The wait flag is advisory: families
// without wait support ignore it. The file path is embedded as given —
// arguments are discrete argv elements, never shell text.
func FormatArgs(kind Kind, file string, line, column int, wait bool) []string {
	if line == 0 {
		column = 0
	}
	format, ok := formatters[kind]
	if !ok {
		format = fileOnlyArgs
	}
	return format(file, line, column, wait)
}

// Command builds the ready-to-run exec.Cmd for a resolved editor: the
// source's extra arguments first (so an environment-supplied --wait
// precedes the position), then the positioning arguments. Terminal editors
// inherit the parent stdio so they can take over the TTY.
func Command(ctx context.Context, ed Resolved, file string, line, column int, wait bool) *exec.Cmd {
	args := make([]string, 0, len(ed.Args)+3)
	args = append(args, ed.Args...)
	args = append(args, FormatArgs(ed.Kind, file, line, column, wait)...)

	cmd := exec.CommandContext(ctx, ed.Binary, args...)
	if ed.IsTerminal() {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd
}

// VS Code family: code --goto file:line:column [--wait]
func gotoArgs(file string, line, column int, wait bool) []string {
	args := []string{"--goto", colonPosition(file, line, column)}
	if wait {
		args = append(args, "--wait")
	}
	return args
}

// Sublime, Zed, Atom: subl file:line:column [--wait]
func colonArgs(file string, line, column int, wait bool) []string {
	args := []string{colonPosition(file, line, column)}
	if wait {
		args = append(args, "--wait")
	}
	return args
}

// Helix: hx file:line:column
func helixArgs(file string, line, column int, _ bool) []string {
	return []string{colonPosition(file, line, column)}
}

// Vim family: vim "+call cursor(line,col)" file, or vim +line file
func vimArgs(file string, line, column int, _ bool) []string {
	switch {
	case line > 0 && column > 0:
		return []string{fmt.Sprintf("+call cursor(%d,%d)", line, column), file}
	case line > 0:
		return []string{fmt.Sprintf("+%d", line), file}
	}
	return []string{file}
}

// Emacs: emacs +line:col file. Wait is a busy-poll workaround inherited
// from existing tooling: keep evaluating sit-for while the buffer has a
// window.
func emacsArgs(file string, line, column int, wait bool) []string {
	var args []string
	switch {
	case line > 0 && column > 0:
		args = append(args, fmt.Sprintf("+%d:%d", line, column))
	case line > 0:
		args = append(args, fmt.Sprintf("+%d", line))
	}
	args = append(args, file)
	if wait {
		args = append(args, "--eval", "(while (get-buffer-window) (sit-for 1))")
	}
	return args
}

// Nano: nano +line,col file
func nanoArgs(file string, line, column int, _ bool) []string {
	switch {
	case line > 0 && column > 0:
		return []string{fmt.Sprintf("+%d,%d", line, column), file}
	case line > 0:
		return []string{fmt.Sprintf("+%d", line), file}
	}
	return []string{file}
}

// TextMate and Xcode: mate --line N file [--wait]. No column support.
func lineFlagArgs(file string, line, _ int, wait bool) []string {
	var args []string
	if line > 0 {
		args = append(args, "--line", fmt.Sprintf("%d", line))
	}
	args = append(args, file)
	if wait {
		args = append(args, "--wait")
	}
	return args
}

// Notepad++: notepad++ -nLINE -cCOL file
func notepadPlusPlusArgs(file string, line, column int, _ bool) []string {
	var args []string
	if line > 0 {
		args = append(args, fmt.Sprintf("-n%d", line))
	}
	if column > 0 {
		args = append(args, fmt.Sprintf("-c%d", column))
	}
	return append(args, file)
}

// JetBrains IDEs: idea file:line [--wait]. Column is silently dropped.
func jetbrainsArgs(file string, line, _ int, wait bool) []string {
	args := []string{colonPosition(file, line, 0)}
	if wait {
		args = append(args, "--wait")
	}
	return args
}

// Kate: kate --line N --column N file
func kateArgs(file string, line, column int, _ bool) []string {
	var args []string
	if line > 0 {
		args = append(args, "--line", fmt.Sprintf("%d", line))
	}
	if column > 0 {
		args = append(args, "--column", fmt.Sprintf("%d", column))
	}
	return append(args, file)
}

// Notepad and unknown editors: just the file.
func fileOnlyArgs(file string, _, _ int, _ bool) []string {
	return []string{file}
}

// colonPosition renders file, file:line or file:line:column.
func colonPosition(file string, line, column int) string {
	switch {
	case line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", file, line, column)
	case line > 0:
		return fmt.Sprintf("%s:%d", file, line)
	}
	return file
}
