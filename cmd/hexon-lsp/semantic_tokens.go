package main

import (
	"bytes"
	"context"

	"github.com/hexon-format/go-hexon/token"
	"go.lsp.dev/protocol"
)

// Indices into the legend declared in Initialize.
const (
	semKeyword = iota
	semString
	semNumber
	semOperator
	semProperty
)

// semanticTokenType classifies a lexical token for highlighting. The
// source text is needed because boolean literals and quoted strings both
// arrive as STRING tokens, distinguished only by the quote in the input.
func semanticTokenType(src []byte, tok token.Token) uint32 {
	switch tok.Type {
	case token.TGlobal:
		return semKeyword
	case token.TIdent:
		return semProperty
	case token.TNumber:
		return semNumber
	case token.TString:
		if tok.Pos.I < len(src) && src[tok.Pos.I] == '"' {
			return semString
		}
		return semKeyword
	default:
		return semOperator
	}
}

// sourceLength gives the span of a token in the source text. Payloads
// strip quotes and the hex prefix, so those are added back.
func sourceLength(src []byte, tok token.Token) uint32 {
	n := len(tok.Bytes)
	switch tok.Type {
	case token.TNumber:
		n += 2 // 0x
	case token.TString:
		if tok.Pos.I < len(src) && src[tok.Pos.I] == '"' {
			n += 2
			if tok.Pos.I+n > len(src) {
				// Unterminated string, runs to end of input.
				n = len(src) - tok.Pos.I
			}
		}
	}
	return uint32(n)
}

// collectSemanticTokens lexes the document and delta-encodes every token
// per the LSP semantic token wire format.
func collectSemanticTokens(doc *document) []uint32 {
	src := []byte(doc.content)
	toks := token.Tokenize(nil, src)

	data := []uint32{}
	var prevLine, prevChar uint32
	for _, tok := range toks {
		if tok.Type == token.TEOF || tok.Type == token.TInvalid {
			continue
		}
		if tok.Type == token.TString && bytes.ContainsRune(tok.Bytes, '\n') {
			// Multi-line tokens are not representable here.
			continue
		}
		l, c := tok.Pos.LineCol()
		line, char := uint32(l-1), uint32(c-1)

		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		data = append(data,
			deltaLine,
			deltaChar,
			sourceLength(src, tok),
			semanticTokenType(src, tok),
			0)
		prevLine, prevChar = line, char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	// Clients tolerate tokens outside the requested range.
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc),
	}, nil
}
