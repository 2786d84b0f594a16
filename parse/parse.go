// Package parse provides Hexon parsing support.
//
// Parsing is classic LL(1) recursive descent over the token stream: one
// lookahead token drives all branching, and eat either advances past the
// expected token or fails the whole parse with a [SyntaxErr]. There is no
// recovery; the first malformed token aborts the translation.
//
// Constants declared with global at top level live in a table owned by
// one Parse call. A ?[name] reference substitutes a clone of the stored
// value wherever it appears; referencing an undeclared name fails with
// [UnknownConstantErr]. The declarations themselves contribute nothing to
// the root object.
//
// A bare { ... } at top level is stored in the root object under the key
// "unnamed". A second bare object silently overwrites the first, the same
// way any duplicate key does.
package parse

import (
	"fmt"
	"strconv"

	"github.com/hexon-format/go-hexon/debug"
	"github.com/hexon-format/go-hexon/ir"
	"github.com/hexon-format/go-hexon/token"
)

// UnnamedKey is the root-object key under which bare top-level objects
// are stored.
const UnnamedKey = "unnamed"

// Parse translates Hexon source into a root object node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		tz:     token.NewTokenizer(d),
		consts: map[string]*ir.Node{},
		opts:   pOpts,
	}
	p.tok = p.tz.Next()
	return p.parseProgram()
}

type parser struct {
	tz     *token.Tokenizer
	tok    token.Token
	consts map[string]*ir.Node
	opts   *parseOpts
}

func (p *parser) eat(expected token.TokenType) error {
	if p.tok.Type != expected {
		return &SyntaxErr{Expected: expected, Got: p.tok.Type, Pos: p.tok.Pos}
	}
	if debug.Parse() {
		debug.Logf("eat %s %q\n", p.tok.Type, string(p.tok.Bytes))
	}
	p.tok = p.tz.Next()
	return nil
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) parseProgram() (*ir.Node, error) {
	root := map[string]*ir.Node{}
	for p.tok.Type != token.TEOF {
		switch p.tok.Type {
		case token.TGlobal:
			if err := p.eat(token.TGlobal); err != nil {
				return nil, err
			}
			name := string(p.tok.Bytes)
			if err := p.eat(token.TIdent); err != nil {
				return nil, err
			}
			if err := p.eat(token.TEquals); err != nil {
				return nil, err
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			if debug.Consts() {
				debug.Logf("const %s declared\n", name)
			}
			p.consts[name] = val
		case token.TIdent:
			key := string(p.tok.Bytes)
			if err := p.eat(token.TIdent); err != nil {
				return nil, err
			}
			if err := p.eat(token.TEquals); err != nil {
				return nil, err
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			root[key] = val
		case token.TLCurl:
			obj, err := p.parseObject()
			if err != nil {
				return nil, err
			}
			root[UnnamedKey] = obj
		default:
			return nil, &UnexpectedErr{Tok: p.tok}
		}
	}
	return ir.FromMap(root), nil
}

func (p *parser) parseValue() (*ir.Node, error) {
	tok := p.tok
	switch tok.Type {
	case token.TNumber:
		v, err := hexInt(&tok)
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.TNumber); err != nil {
			return nil, err
		}
		node := ir.FromInt(v)
		p.trackPos(node, tok.Pos)
		return node, nil
	case token.TString:
		if err := p.eat(token.TString); err != nil {
			return nil, err
		}
		var node *ir.Node
		// boolean literals arrive as STRING tokens; only the payload
		// tells them apart
		switch string(tok.Bytes) {
		case token.KWTrue:
			node = ir.FromBool(true)
		case token.KWFalse:
			node = ir.FromBool(false)
		default:
			node = ir.FromString(string(tok.Bytes))
		}
		p.trackPos(node, tok.Pos)
		return node, nil
	case token.THash:
		return p.parseArray()
	case token.TQuestion:
		return p.parseConstRef()
	case token.TLCurl:
		return p.parseObject()
	default:
		return nil, &UnexpectedErr{Tok: tok}
	}
}

// array := HASH LPAREN value* RPAREN
func (p *parser) parseArray() (*ir.Node, error) {
	pos := p.tok.Pos
	if err := p.eat(token.THash); err != nil {
		return nil, err
	}
	if err := p.eat(token.TLParen); err != nil {
		return nil, err
	}
	var elts []*ir.Node
	for p.tok.Type != token.TRParen && p.tok.Type != token.TEOF {
		elt, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
	}
	if err := p.eat(token.TRParen); err != nil {
		return nil, err
	}
	node := ir.FromSlice(elts)
	p.trackPos(node, pos)
	return node, nil
}

// object := LBRACE (IDENTIFIER EQUALS value)* RBRACE
func (p *parser) parseObject() (*ir.Node, error) {
	pos := p.tok.Pos
	if err := p.eat(token.TLCurl); err != nil {
		return nil, err
	}
	m := map[string]*ir.Node{}
	for p.tok.Type != token.TRCurl && p.tok.Type != token.TEOF {
		key := string(p.tok.Bytes)
		if err := p.eat(token.TIdent); err != nil {
			return nil, err
		}
		if err := p.eat(token.TEquals); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// duplicate keys overwrite, no error
		m[key] = val
	}
	if err := p.eat(token.TRCurl); err != nil {
		return nil, err
	}
	node := ir.FromMap(m)
	p.trackPos(node, pos)
	return node, nil
}

// const_ref := QUESTION LBRACKET IDENTIFIER RBRACKET
func (p *parser) parseConstRef() (*ir.Node, error) {
	if err := p.eat(token.TQuestion); err != nil {
		return nil, err
	}
	if err := p.eat(token.TLSquare); err != nil {
		return nil, err
	}
	nameTok := p.tok
	if err := p.eat(token.TIdent); err != nil {
		return nil, err
	}
	if err := p.eat(token.TRSquare); err != nil {
		return nil, err
	}
	name := string(nameTok.Bytes)
	val, ok := p.consts[name]
	if !ok {
		return nil, &UnknownConstantErr{Name: name, Pos: nameTok.Pos}
	}
	if debug.Consts() {
		debug.Logf("const %s referenced\n", name)
	}
	// substitution clones per reference site: object and array
	// construction rewrite parent links, so aliasing one node from
	// several sites would corrupt earlier ones
	return val.Clone(), nil
}

// hexInt converts a NUMBER token payload (hex digits, prefix already
// stripped) to the signed 64-bit value of its bits. Payloads with the top
// bit set round-trip as their signed interpretation; 0xFFFFFFFFFFFFFFFF
// is -1.
func hexInt(tok *token.Token) (int64, error) {
	if len(tok.Bytes) == 0 {
		line, col := tok.Pos.LineCol()
		return 0, fmt.Errorf("%w: empty hex literal at line %d, column %d", ErrParse, line, col)
	}
	u, err := strconv.ParseUint(string(tok.Bytes), 16, 64)
	if err != nil {
		line, col := tok.Pos.LineCol()
		return 0, fmt.Errorf("%w: hex literal %q at line %d, column %d: %w",
			ErrParse, string(tok.Bytes), line, col, err)
	}
	return int64(u), nil
}
