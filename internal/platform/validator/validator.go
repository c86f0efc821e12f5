// internal/platform/validator/validator.go
package validator

import (
	"regexp"
	"strings"
)

// Version tag validators

// Gramática de tags de los repositorios upstream.
// vim/vim usa v7.x(.y) y desde v8 parches de 4 dígitos; neovim/neovim usa vX.Y.Z.
const (
	VimTagPattern    = `^v7\.\d+(?:\.\d+)?$|^v\d+\.\d+\.\d{4}$`
	NeovimTagPattern = `^v\d+\.\d+\.\d+$`
)

var (
	vimTagRegex    = regexp.MustCompile(VimTagPattern)
	neovimTagRegex = regexp.MustCompile(NeovimTagPattern)
)

// IsVimTag verifica si un string es un tag válido de vim/vim.
func IsVimTag(tag string) bool {
	return vimTagRegex.MatchString(tag)
}

// IsNeovimTag verifica si un string es un tag válido de neovim/neovim.
func IsNeovimTag(tag string) bool {
	return neovimTagRegex.MatchString(tag)
}

// IsReleaseChannel verifica si version es "stable" o "nightly" (sin distinguir mayúsculas).
func IsReleaseChannel(version string) bool {
	switch strings.ToLower(version) {
	case "stable", "nightly":
		return true
	default:
		return false
	}
}

// Boolean validators

// ParseBool acepta solo "true"/"false" sin distinguir mayúsculas, o vacío (def).
// ok es false para cualquier otro valor.
func ParseBool(s string, def bool) (value bool, ok bool) {
	switch strings.ToLower(s) {
	case "":
		return def, true
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
