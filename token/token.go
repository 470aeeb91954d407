package token

const specialRunes = `\.:_-{}`

// IsTokenRune reports whether r may appear in a token.
func IsTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	for _, s := range specialRunes {
		if r == s {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a non-empty run of token runes.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsTokenRune(r) {
			return false
		}
	}
	return true
}

// IsSpace reports whether r is format whitespace. '\n' is not.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\r', '\t', '\v', '\f':
		return true
	}
	return false
}

const (
	CommentStart = ';'
	ListOpen     = '('
	ListClose    = ')'
	Quote        = '"'
	Newline      = '\n'
)
