package main

import (
	"context"
	"errors"
	"sync"

	"github.com/hexon-format/go-hexon/parse"
	"github.com/hexon-format/go-hexon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     protocol.DocumentURI
	content string
	version int32
}

func (ds *documentStore) get(uri protocol.DocumentURI) (*document, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	doc, ok := ds.docs[string(uri)]
	return doc, ok
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[string(doc.uri)] = doc
}

func (ds *documentStore) remove(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, string(uri))
}

// update swaps in a fresh document for uri. The stored *document is
// shared with concurrent readers, so it is replaced rather than mutated.
func (ds *documentStore) update(uri protocol.DocumentURI, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if _, ok := ds.docs[string(uri)]; !ok {
		return nil
	}
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	ds.docs[string(uri)] = doc
	return doc
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{
		uri:     params.TextDocument.URI,
		content: params.TextDocument.Text,
		version: int32(params.TextDocument.Version),
	}
	s.docs.put(doc)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil
	}
	// Sync kind is Full, so the last change carries the whole document.
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}
	updated := s.docs.update(params.TextDocument.URI, content, int32(params.TextDocument.Version))
	if updated == nil {
		return nil
	}
	s.publishDiagnostics(ctx, updated)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil
	}
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	// Clear diagnostics for the closed document.
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Version:     uint32(doc.version),
		Diagnostics: diagnostics,
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	_, err := parse.Parse([]byte(doc.content))
	if err == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{{
		Range:    errRange(doc, err),
		Severity: protocol.DiagnosticSeverityError,
		Source:   "hexon",
		Message:  err.Error(),
	}}
}

// errRange locates a parse error in the document. Positions in parse
// errors are 1-based, protocol positions are 0-based.
func errRange(doc *document, err error) protocol.Range {
	pos := errPos(err)
	if pos == nil {
		return protocol.Range{}
	}
	line, col := pos.LineCol()
	start := protocol.Position{
		Line:      uint32(line - 1),
		Character: uint32(col - 1),
	}
	end := start
	end.Character++
	return protocol.Range{Start: start, End: end}
}

func errPos(err error) *token.Pos {
	var (
		syntaxErr  *parse.SyntaxErr
		constErr   *parse.UnknownConstantErr
		unexpected *parse.UnexpectedErr
	)
	switch {
	case errors.As(err, &syntaxErr):
		return syntaxErr.Pos
	case errors.As(err, &constErr):
		return constErr.Pos
	case errors.As(err, &unexpected):
		return unexpected.Tok.Pos
	}
	return nil
}
