//go:build !windows

package editor

// No extra PATH candidates beyond the common fallback list.
var platformFallbackEditors []string
