package parse

import (
	"errors"
	"fmt"

	"github.com/hexon-format/go-hexon/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnknownConstant = errors.New("unknown constant")
)

// SyntaxErr reports an expected-token mismatch at an eat point.
type SyntaxErr struct {
	Expected token.TokenType
	Got      token.TokenType
	Pos      *token.Pos
}

func (e *SyntaxErr) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, got %s",
		line, col, e.Expected, e.Got)
}

func (e *SyntaxErr) Unwrap() error {
	return ErrParse
}

// UnknownConstantErr reports a ?[name] reference to a constant never
// declared via global.
type UnknownConstantErr struct {
	Name string
	Pos  *token.Pos
}

func (e *UnknownConstantErr) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("unknown constant %q at line %d, column %d", e.Name, line, col)
}

func (e *UnknownConstantErr) Unwrap() error {
	return ErrUnknownConstant
}

// UnexpectedErr reports a token that is valid nowhere in the current
// grammar position.
type UnexpectedErr struct {
	Tok token.Token
}

func (e *UnexpectedErr) Error() string {
	line, col := e.Tok.Pos.LineCol()
	return fmt.Sprintf("unexpected token %s %q at line %d, column %d",
		e.Tok.Type, string(e.Tok.Bytes), line, col)
}

func (e *UnexpectedErr) Unwrap() error {
	return ErrParse
}
