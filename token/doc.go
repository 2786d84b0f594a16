// Package token tokenizes Hexon source text.
//
// The tokenizer is pull based: each call to [Tokenizer.Next] returns the
// next token and advances the cursor, ending with a TEOF token. The
// tokenizer itself never fails; characters it cannot classify become
// TInvalid tokens whose rejection is the parser's business.
//
// Token positions are byte offsets into the source resolved to 1-based
// line/column pairs through [PosDoc].
package token
