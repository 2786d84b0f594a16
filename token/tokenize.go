package token

import "github.com/hexon-format/go-hexon/debug"

// Tokenize appends all tokens of src to dst, including the final TEOF
// token.
func Tokenize(dst []Token, src []byte) []Token {
	tz := NewTokenizer(src)
	for {
		tok := tz.Next()
		if debug.Tokens() {
			debug.Logf("token %s %q\n", tok.Type, string(tok.Bytes))
		}
		dst = append(dst, tok)
		if tok.Type == TEOF {
			return dst
		}
	}
}
