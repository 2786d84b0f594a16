package token

import (
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
}

func TestTokenizeTypes(t *testing.T) {
	tts := []tokTest{
		{
			in:    `port = 0x1A`,
			types: []TokenType{TIdent, TEquals, TNumber, TEOF},
		},
		{
			in:    `ports = #( 0x01 0x02 )`,
			types: []TokenType{TIdent, TEquals, THash, TLParen, TNumber, TNumber, TRParen, TEOF},
		},
		{
			in:    "global MAX = 0x10",
			types: []TokenType{TGlobal, TIdent, TEquals, TNumber, TEOF},
		},
		{
			in:    `size = ?[MAX]`,
			types: []TokenType{TIdent, TEquals, TQuestion, TLSquare, TIdent, TRSquare, TEOF},
		},
		{
			in:    `c = { a = true b = false }`,
			types: []TokenType{TIdent, TEquals, TLCurl, TIdent, TEquals, TString, TIdent, TEquals, TString, TRCurl, TEOF},
		},
		{
			in:    `h = "hello world"`,
			types: []TokenType{TIdent, TEquals, TString, TEOF},
		},
		{
			// unknown characters become INVALID, never an error
			in:    `a = @`,
			types: []TokenType{TIdent, TEquals, TInvalid, TEOF},
		},
		{
			in:    ``,
			types: []TokenType{TEOF},
		},
		{
			in:    "  \t\n  ",
			types: []TokenType{TEOF},
		},
		{
			// a bare prefix still lexes as NUMBER, with an empty payload
			in:    `a = 0x`,
			types: []TokenType{TIdent, TEquals, TNumber, TEOF},
		},
	}
	for _, tt := range tts {
		toks := Tokenize(nil, []byte(tt.in))
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i, tok := range toks {
			if tok.Type != tt.types[i] {
				t.Errorf("%q: token %d is %s, want %s", tt.in, i, tok.Type, tt.types[i])
			}
		}
	}
}

func TestTokenizePayloads(t *testing.T) {
	toks := Tokenize(nil, []byte(`port = 0x1A name = "srv" on = true`))
	bt := map[string]string{}
	for _, tok := range toks {
		if tok.Type == TEOF {
			continue
		}
		bt[tok.Type.String()+":"+string(tok.Bytes)] = string(tok.Bytes)
	}
	// hex prefix and quotes are stripped from payloads
	for _, want := range []string{"NUMBER:1A", "STRING:srv", "STRING:true"} {
		if _, ok := bt[want]; !ok {
			t.Errorf("missing token %s in %v", want, bt)
		}
	}
}

func TestTokenizeBooleansAreStrings(t *testing.T) {
	for _, kw := range []string{KWTrue, KWFalse} {
		toks := Tokenize(nil, []byte(kw))
		if toks[0].Type != TString {
			t.Errorf("%s lexed as %s, want STRING", kw, toks[0].Type)
		}
		if string(toks[0].Bytes) != kw {
			t.Errorf("%s payload %q", kw, string(toks[0].Bytes))
		}
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks := Tokenize(nil, []byte(`a = "never closed`))
	if len(toks) != 4 {
		t.Fatalf("got %d tokens", len(toks))
	}
	tok := toks[2]
	if tok.Type != TString {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if string(tok.Bytes) != "never closed" {
		t.Errorf("payload %q", string(tok.Bytes))
	}
}

func TestTokenizeStringWithNewline(t *testing.T) {
	toks := Tokenize(nil, []byte("a = \"one\ntwo\"\nb = 0x1"))
	if toks[2].Type != TString || string(toks[2].Bytes) != "one\ntwo" {
		t.Fatalf("string token %s %q", toks[2].Type, string(toks[2].Bytes))
	}
	// the newline inside the string still counts for line numbering
	line, col := toks[3].Pos.LineCol()
	if line != 3 || col != 1 {
		t.Errorf("b at line %d col %d, want 3, 1", line, col)
	}
}

func TestLineCol(t *testing.T) {
	in := "port = 0x1A\nhost = \"h\"\n  deep = true"
	toks := Tokenize(nil, []byte(in))
	type lc struct{ line, col int }
	want := []lc{
		{1, 1},  // port
		{1, 6},  // =
		{1, 8},  // 0x1A
		{2, 1},  // host
		{2, 6},  // =
		{2, 8},  // "h"
		{3, 3},  // deep
		{3, 8},  // =
		{3, 10}, // true
	}
	for i, w := range want {
		line, col := toks[i].Pos.LineCol()
		if line != w.line || col != w.col {
			t.Errorf("token %d %s at line %d col %d, want %d, %d",
				i, toks[i].Type, line, col, w.line, w.col)
		}
	}
}

func TestIdentRules(t *testing.T) {
	// leading underscore or digit never starts an identifier
	toks := Tokenize(nil, []byte("_x"))
	if toks[0].Type != TInvalid {
		t.Errorf("_x starts with %s, want INVALID", toks[0].Type)
	}
	// underscores and digits are fine after the first character
	toks = Tokenize(nil, []byte("max_size_2"))
	if toks[0].Type != TIdent || string(toks[0].Bytes) != "max_size_2" {
		t.Errorf("got %s %q", toks[0].Type, string(toks[0].Bytes))
	}
}

func TestQuote(t *testing.T) {
	qts := []struct{ in, want string }{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\nb", `"a\nb"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		// control bytes outside the named escapes get \u escapes
		{"\x01", `"\u0001"`},
		{"\x1f", `"\u001f"`},
	}
	for _, qt := range qts {
		if got := Quote(qt.in); got != qt.want {
			t.Errorf("Quote(%q) = %s, want %s", qt.in, got, qt.want)
		}
	}
}
