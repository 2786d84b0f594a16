package token

// Keywords recognized by the tokenizer. The boolean literals tokenize as
// TString, not as distinct token types; the parser tells booleans apart
// from ordinary strings by payload.
const (
	KWGlobal = "global"
	KWTrue   = "true"
	KWFalse  = "false"
)

func hexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

func identStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// identPart accepts underscores even though identStart does not: the
// grammar is [A-Za-z][A-Za-z0-9_]*.
func identPart(c byte) bool {
	return identStart(c) || c == '_' || c >= '0' && c <= '9'
}

func space(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
