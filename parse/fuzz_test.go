package parse

import (
	"bytes"
	"testing"

	"github.com/hexon-format/go-hexon/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Bindings
		`port = 0x1A`,
		`name = "server"`,
		`flag = true`,
		`flag = false`,

		// Numbers
		`v = 0x0`,
		`v = 0xff`,
		`v = 0XFF`,
		`v = 0xFFFFFFFFFFFFFFFF`,
		`v = 0x`,

		// Arrays
		`xs = #( )`,
		`xs = #( 0x1 0x2 0x3 )`,
		`xs = #( "a" "b" )`,
		`xs = #( #( 0x1 ) #( 0x2 ) )`,

		// Objects
		`o = {}`,
		`o = { a = 0x1 }`,
		`o = { a = { b = 0x2 } }`,
		`{ bare = true }`,

		// Constants
		"global MAX = 0x100\nsize = ?[MAX]",
		"global DEF = { a = 0x1 }\nx = ?[DEF]",
		`x = ?[UNDECLARED]`,

		// Strings with special content
		`s = "with \" embedded"`,
		"s = \"multi\nline\"",
		`s = "unterminated`,

		// Malformed
		`port 0x1A`,
		`= 0x1`,
		`x = #( 0x1`,
		`x = { a`,
		`x = @`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encode should not panic
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("encode failed on parsed input %q: %v", data, err)
		}
	})
}
