package token

// Tokenizer provides stateful, pull-based tokenization of a fully
// buffered document.
type Tokenizer struct {
	posDoc *PosDoc
	d      []byte
	pos    int
}

var singleChar = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	'(': TLParen,
	')': TRParen,
	'#': THash,
	'=': TEquals,
	'?': TQuestion,
}

func NewTokenizer(doc []byte) *Tokenizer {
	return &Tokenizer{
		d:      doc,
		posDoc: &PosDoc{d: doc},
	}
}

// PosDoc returns the position index shared by all tokens this Tokenizer
// produces.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// Next returns the next token and advances. After the input is exhausted
// it returns a TEOF token on every call. Next never fails: unclassifiable
// characters come back as TInvalid tokens.
func (t *Tokenizer) Next() Token {
	t.skipSpace()
	if t.pos >= len(t.d) {
		return Token{Type: TEOF, Pos: t.posDoc.Pos(t.pos)}
	}
	c := t.d[t.pos]
	start := t.pos

	if c == '0' && t.pos+1 < len(t.d) && (t.d[t.pos+1] == 'x' || t.d[t.pos+1] == 'X') {
		t.pos += 2
		ds := t.pos
		for t.pos < len(t.d) && hexDigit(t.d[t.pos]) {
			t.pos++
		}
		// a bare 0x comes back with an empty payload; the parser
		// rejects it
		return Token{Type: TNumber, Pos: t.posDoc.Pos(start), Bytes: t.d[ds:t.pos]}
	}

	if identStart(c) {
		for t.pos < len(t.d) && identPart(t.d[t.pos]) {
			t.pos++
		}
		word := t.d[start:t.pos]
		tok := Token{Type: TIdent, Pos: t.posDoc.Pos(start), Bytes: word}
		switch string(word) {
		case KWGlobal:
			tok.Type = TGlobal
		case KWTrue, KWFalse:
			tok.Type = TString
		}
		return tok
	}

	if c == '"' {
		t.pos++
		ds := t.pos
		for t.pos < len(t.d) && t.d[t.pos] != '"' {
			if t.d[t.pos] == '\n' {
				t.posDoc.nl(t.pos)
			}
			t.pos++
		}
		body := t.d[ds:t.pos]
		if t.pos < len(t.d) {
			// closing quote; an unterminated string runs to end of
			// input and is accepted as-is
			t.pos++
		}
		return Token{Type: TString, Pos: t.posDoc.Pos(start), Bytes: body}
	}

	if tt, ok := singleChar[c]; ok {
		t.pos++
		return Token{Type: tt, Pos: t.posDoc.Pos(start), Bytes: t.d[start:t.pos]}
	}

	t.pos++
	return Token{Type: TInvalid, Pos: t.posDoc.Pos(start), Bytes: t.d[start:t.pos]}
}

func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.d) && space(t.d[t.pos]) {
		if t.d[t.pos] == '\n' {
			t.posDoc.nl(t.pos)
		}
		t.pos++
	}
}
