// Package editor resolves which text editor the user wants and opens files
// in it, optionally at a 1-indexed line and column.
//
// Resolution checks application configs, $VISUAL, $EDITOR and a PATH search
// in a caller-controlled order; the argument syntax for line:column
// positioning is selected per editor kind.
package editor

import (
	"path/filepath"
	"strings"
)

// Kind identifies a known text editor. The zero value is KindUnknown, which
// only ever receives the bare file path.
type Kind int

const (
	// KindUnknown is any editor opn does not recognize.
	KindUnknown Kind = iota

	// VS Code family
	KindVsCode
	KindVsCodeInsiders
	KindVSCodium
	KindCursor
	KindWindsurf

	// Vim family
	KindVim
	KindNeoVim
	KindVi
	KindGVim

	// Emacs family
	KindEmacs
	KindEmacsClient

	// Modern GUI editors
	KindSublime
	KindZed
	KindHelix
	KindAtom
	KindKate

	// Terminal editors
	KindNano

	// macOS editors
	KindTextMate
	KindXcode

	// Windows editors
	KindNotepadPlusPlus
	KindNotepad

	// JetBrains family
	KindIntelliJ
	KindWebStorm
	KindPhpStorm
	KindPyCharm
	KindRubyMine
	KindGoLand
	KindCLion
	KindRider
	KindDataGrip
	KindAndroidStudio

	kindCount
)

// kindInfo is the per-editor catalog entry. Canonical names and default
// binaries are unique across concrete kinds.
type kindInfo struct {
	name    string // canonical name (stable, used in configs)
	display string // human-readable name
	binary  string // default binary name
}

var kinds = map[Kind]kindInfo{
	KindUnknown:         {"Unknown", "Unknown Editor", "unknown"},
	KindVsCode:          {"VsCode", "VS Code", "code"},
	KindVsCodeInsiders:  {"VsCodeInsiders", "VS Code Insiders", "code-insiders"},
	KindVSCodium:        {"VSCodium", "VSCodium", "codium"},
	KindCursor:          {"Cursor", "Cursor", "cursor"},
	KindWindsurf:        {"Windsurf", "Windsurf", "windsurf"},
	KindVim:             {"Vim", "Vim", "vim"},
	KindNeoVim:          {"NeoVim", "NeoVim", "nvim"},
	KindVi:              {"Vi", "Vi", "vi"},
	KindGVim:            {"GVim", "GVim", "gvim"},
	KindEmacs:           {"Emacs", "Emacs", "emacs"},
	KindEmacsClient:     {"EmacsClient", "Emacs Client", "emacsclient"},
	KindSublime:         {"Sublime", "Sublime Text", "subl"},
	KindZed:             {"Zed", "Zed", "zed"},
	KindHelix:           {"Helix", "Helix", "hx"},
	KindAtom:            {"Atom", "Atom", "atom"},
	KindKate:            {"Kate", "Kate", "kate"},
	KindNano:            {"Nano", "Nano", "nano"},
	KindTextMate:        {"TextMate", "TextMate", "mate"},
	KindXcode:           {"Xcode", "Xcode", "xed"},
	KindNotepadPlusPlus: {"NotepadPlusPlus", "Notepad++", "notepad++"},
	KindNotepad:         {"Notepad", "Notepad", "notepad"},
	KindIntelliJ:        {"IntelliJ", "IntelliJ IDEA", "idea"},
	KindWebStorm:        {"WebStorm", "WebStorm", "webstorm"},
	KindPhpStorm:        {"PhpStorm", "PhpStorm", "pstorm"},
	KindPyCharm:         {"PyCharm", "PyCharm", "pycharm"},
	KindRubyMine:        {"RubyMine", "RubyMine", "rubymine"},
	KindGoLand:          {"GoLand", "GoLand", "goland"},
	KindCLion:           {"CLion", "CLion", "clion"},
	KindRider:           {"Rider", "Rider", "rider"},
	KindDataGrip:        {"DataGrip", "DataGrip", "datagrip"},
	KindAndroidStudio:   {"AndroidStudio", "Android Studio", "studio"},
}

// nameAliases maps normalized editor names (lowercase, separators removed)
// to kinds. Used by KindFromName for configs and the --editor flag.
var nameAliases = map[string]Kind{
	"vscode": KindVsCode, "visualstudiocode": KindVsCode, "code": KindVsCode,
	"vscodeinsiders": KindVsCodeInsiders, "codeinsiders": KindVsCodeInsiders,
	"vscodium": KindVSCodium, "codium": KindVSCodium,
	"cursor":   KindCursor,
	"windsurf": KindWindsurf,
	"vim":      KindVim,
	"neovim":   KindNeoVim, "nvim": KindNeoVim,
	"vi":   KindVi,
	"gvim": KindGVim, "mvim": KindGVim,
	"emacs": KindEmacs, "gnuemacs": KindEmacs, "xemacs": KindEmacs,
	"emacsclient": KindEmacsClient,
	"sublime":     KindSublime, "sublimetext": KindSublime, "subl": KindSublime,
	"zed":   KindZed,
	"helix": KindHelix, "hx": KindHelix,
	"atom": KindAtom,
	"kate": KindKate,
	"nano": KindNano,
	"textmate": KindTextMate, "mate": KindTextMate,
	"xcode": KindXcode, "xed": KindXcode,
	"notepadplusplus": KindNotepadPlusPlus, "notepad++": KindNotepadPlusPlus, "npp": KindNotepadPlusPlus,
	"notepad":  KindNotepad,
	"intellij": KindIntelliJ, "intellijidea": KindIntelliJ, "idea": KindIntelliJ,
	"webstorm": KindWebStorm,
	"phpstorm": KindPhpStorm, "pstorm": KindPhpStorm,
	"pycharm": KindPyCharm, "charm": KindPyCharm,
	"rubymine": KindRubyMine, "mine": KindRubyMine,
	"goland":   KindGoLand,
	"clion":    KindCLion,
	"rider":    KindRider,
	"datagrip": KindDataGrip,
	"androidstudio": KindAndroidStudio, "studio": KindAndroidStudio,
}

// binaryAliases maps bare binary names (lowercase, extension stripped) to
// kinds. Used by KindFromBinary for $EDITOR values and PATH hits.
var binaryAliases = map[string]Kind{
	"code": KindVsCode, "vscode": KindVsCode,
	"code-insiders": KindVsCodeInsiders,
	"codium":        KindVSCodium, "vscodium": KindVSCodium, "code-oss": KindVSCodium,
	"cursor":   KindCursor,
	"windsurf": KindWindsurf,
	"vim":      KindVim,
	"nvim":     KindNeoVim, "neovim": KindNeoVim,
	"vi":   KindVi,
	"gvim": KindGVim, "mvim": KindGVim,
	"emacs": KindEmacs, "xemacs": KindEmacs,
	"emacsclient": KindEmacsClient,
	"subl":        KindSublime, "sublime": KindSublime, "sublime_text": KindSublime,
	"zed": KindZed,
	"hx":  KindHelix, "helix": KindHelix,
	"atom": KindAtom,
	"kate": KindKate,
	"nano": KindNano,
	"mate": KindTextMate, "textmate": KindTextMate,
	"xed": KindXcode, "xcode": KindXcode,
	"notepad++": KindNotepadPlusPlus,
	"notepad":   KindNotepad,
	"idea":      KindIntelliJ, "intellij": KindIntelliJ, "idea64": KindIntelliJ,
	"webstorm": KindWebStorm, "webstorm64": KindWebStorm,
	"pstorm": KindPhpStorm, "phpstorm": KindPhpStorm, "phpstorm64": KindPhpStorm,
	"pycharm": KindPyCharm, "pycharm64": KindPyCharm, "charm": KindPyCharm,
	"rubymine": KindRubyMine, "mine": KindRubyMine,
	"goland": KindGoLand, "goland64": KindGoLand,
	"clion": KindCLion, "clion64": KindCLion,
	"rider": KindRider, "rider64": KindRider,
	"datagrip": KindDataGrip, "datagrip64": KindDataGrip,
	"studio": KindAndroidStudio, "studio64": KindAndroidStudio, "android-studio": KindAndroidStudio,
}

// KindFromName parses a Kind from a canonical name or alias. Matching is
// case-insensitive and ignores '-' and '_' separators, so "vs-code",
// "VSCode" and "code" all map to KindVsCode. The second return is false for
// unrecognized names.
func KindFromName(name string) (Kind, bool) {
	normalized := strings.ToLower(name)
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	k, ok := nameAliases[normalized]
	return k, ok
}

// KindFromBinary detects the Kind from a binary name or path. Handles bare
// names ("vim"), full paths ("/usr/bin/vim") and Windows launcher
// extensions ("code.cmd"). Unrecognized binaries yield KindUnknown.
func KindFromBinary(binary string) Kind {
	name := strings.ToLower(filepath.Base(binary))
	for _, ext := range []string{".exe", ".cmd", ".bat"} {
		if s, ok := strings.CutSuffix(name, ext); ok {
			name = s
			break
		}
	}
	return binaryAliases[name]
}

// Kinds returns every concrete editor kind in declaration order.
// KindUnknown is not included.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Name returns the canonical name for the kind, e.g. "NeoVim". This is the
// stable spelling accepted back by KindFromName.
func (k Kind) Name() string {
	return kinds[k].name
}

// String returns the human-readable name, e.g. "VS Code Insiders".
func (k Kind) String() string {
	return kinds[k].display
}

// DefaultBinary returns the binary name the kind is normally installed as.
func (k Kind) DefaultBinary() string {
	return kinds[k].binary
}

// IsTerminal reports whether the editor runs inside the terminal and needs
// the parent's stdio.
func (k Kind) IsTerminal() bool {
	switch k {
	case KindVim, KindNeoVim, KindVi, KindNano, KindEmacs, KindHelix:
		return true
	}
	return false
}

// SupportsColumn reports whether the editor can position the cursor at a
// column, not just a line.
func (k Kind) SupportsColumn() bool {
	switch k {
	case KindVsCode, KindVsCodeInsiders, KindVSCodium, KindCursor, KindWindsurf,
		KindVim, KindNeoVim, KindVi, KindGVim,
		KindEmacs, KindEmacsClient,
		KindSublime, KindZed, KindHelix, KindAtom, KindKate,
		KindNano, KindNotepadPlusPlus:
		return true
	}
	return false
}

// SupportsWait reports whether the editor understands a --wait style flag
// that blocks until the file is closed.
func (k Kind) SupportsWait() bool {
	switch k {
	case KindVsCode, KindVsCodeInsiders, KindVSCodium, KindCursor, KindWindsurf,
		KindSublime, KindZed, KindAtom, KindTextMate, KindXcode,
		KindIntelliJ, KindWebStorm, KindPhpStorm, KindPyCharm, KindRubyMine,
		KindGoLand, KindCLion, KindRider, KindDataGrip, KindAndroidStudio:
		return true
	}
	return false
}
