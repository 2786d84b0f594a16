package token

import "fmt"

type TokenType int

const (
	TNumber TokenType = iota
	TString
	TIdent
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	THash
	TEquals
	TQuestion
	TGlobal
	TEOF
	TInvalid
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNumber:   "NUMBER",
		TString:   "STRING",
		TIdent:    "IDENTIFIER",
		TLCurl:    "LBRACE",
		TRCurl:    "RBRACE",
		TLSquare:  "LBRACKET",
		TRSquare:  "RBRACKET",
		TLParen:   "LPAREN",
		TRParen:   "RPAREN",
		THash:     "HASH",
		TEquals:   "EQUALS",
		TQuestion: "QUESTION",
		TGlobal:   "GLOBAL",
		TEOF:      "EOF",
		TInvalid:  "INVALID",
	}[t]
}

// Token is an immutable lexical unit. Bytes holds the textual payload:
// for TNumber the hex digits without the 0x prefix, for TString the raw
// text between the quotes, otherwise the matched source text.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
