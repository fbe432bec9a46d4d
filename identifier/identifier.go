// Package identifier implements the name-sanitization contract the core
// exposes to external code generators: a deterministic, collision-free
// mapping from glyph names to valid Go-style identifiers.
package identifier

import (
	"strconv"
	"strings"
)

// Sanitize lowercases name, replaces every character outside [a-z0-9] with
// '_', collapses runs of '_', trims leading/trailing '_', and prefixes with
// '_' if the result would start with a digit.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		out = "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// Uniquifier assigns collision-free identifiers within a single font, by
// appending "_<glyph-id>" to any sanitized name already seen (again, if the
// suffixed form is itself already taken).
type Uniquifier struct {
	seen map[string]bool
}

// NewUniquifier returns a fresh, empty Uniquifier.
func NewUniquifier() *Uniquifier {
	return &Uniquifier{seen: make(map[string]bool)}
}

// Assign returns a unique sanitized identifier for (name, gid). Calls must
// be made in a stable order (e.g. ascending glyph id) for the result to be
// deterministic across runs.
func (u *Uniquifier) Assign(name string, gid int) string {
	id := Sanitize(name)
	if !u.seen[id] {
		u.seen[id] = true
		return id
	}
	unique := id + "_" + strconv.Itoa(gid)
	for u.seen[unique] {
		unique += "_" + strconv.Itoa(gid)
	}
	u.seen[unique] = true
	return unique
}
