//go:build windows

package editor

// Windows-specific PATH candidates, probed after the common fallback list.
// The .cmd launchers are how VS Code and Cursor land on PATH there.
var platformFallbackEditors = []string{
	"code.cmd",
	"cursor.cmd",
	"notepad++",
	"notepad",
}
