// Package hexon translates Hexon configuration text into JSON.
//
// Hexon is a small declarative configuration notation with hexadecimal
// integers, quoted strings, booleans, #( ... ) arrays, { ... } objects,
// and translation-time constants:
//
//	global PORT = 0x50
//	server = {
//	    port  = ?[PORT]
//	    hosts = #( "host1" "host2" )
//	}
//
// Translate runs the whole pipeline: tokenize, parse with constant
// substitution, and render the root object as JSON with lexicographically
// ordered keys. The subpackages expose the stages individually: token,
// parse, ir, and encode.
package hexon

import (
	"bytes"

	"github.com/hexon-format/go-hexon/encode"
	"github.com/hexon-format/go-hexon/parse"
)

// Translate converts Hexon source text to its JSON rendering. The result
// carries no trailing newline. Any tokenization or grammar problem fails
// the whole translation; there is no partial output.
func Translate(d []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TranslateString is Translate for string input and output.
func TranslateString(s string, opts ...encode.EncodeOption) (string, error) {
	d, err := Translate([]byte(s), opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
