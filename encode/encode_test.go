package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hexon-format/go-hexon/format"
	"github.com/hexon-format/go-hexon/ir"
)

func TestEncodeLeaves(t *testing.T) {
	ets := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromInt(26), "26"},
		{ir.FromInt(-1), "-1"},
		{ir.FromInt(0), "0"},
		{ir.FromBool(true), "true"},
		{ir.FromBool(false), "false"},
		{ir.FromString("localhost"), `"localhost"`},
	}
	for _, et := range ets {
		if got := MustString(et.node); got != et.want {
			t.Errorf("got %s, want %s", got, et.want)
		}
	}
}

func TestEncodeEmptyObject(t *testing.T) {
	if got := MustString(ir.FromMap(nil)); got != "{}" {
		t.Errorf("got %s", got)
	}
}

func TestEncodeObjectIndent(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"app": ir.FromMap(map[string]*ir.Node{
			"db": ir.FromMap(map[string]*ir.Node{
				"host": ir.FromString("localhost"),
				"port": ir.FromInt(8822),
			}),
		}),
	})
	want := strings.Join([]string{
		`{`,
		`  "app": {`,
		`    "db": {`,
		`      "host": "localhost",`,
		`      "port": 8822`,
		`    }`,
		`  }`,
		`}`,
	}, "\n")
	if got := MustString(node); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeArraySingleLine(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"ports": ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
		}),
	})
	want := "{\n  \"ports\": [1, 2, 3]\n}"
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeArrayElementsAtDepthZero(t *testing.T) {
	// objects inside arrays restart indentation, no matter how deeply the
	// array itself is nested
	node := ir.FromMap(map[string]*ir.Node{
		"outer": ir.FromMap(map[string]*ir.Node{
			"xs": ir.FromSlice([]*ir.Node{
				ir.FromMap(map[string]*ir.Node{"n": ir.FromInt(3)}),
			}),
		}),
	})
	want := "{\n  \"outer\": {\n    \"xs\": [{\n  \"n\": 3\n}]\n  }\n}"
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeStringVerbatim(t *testing.T) {
	// default rendering passes string contents through untouched
	node := ir.FromString("say \"hi\"\nback\\slash")
	want := "\"say \"hi\"\nback\\slash\""
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeStringEscaped(t *testing.T) {
	node := ir.FromString("say \"hi\"\nagain")
	want := `"say \"hi\"\nagain"`
	if got := MustString(node, EscapeStrings(true)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})
	want := "{\n      \"a\": 1\n    }"
	if got := MustString(node, Depth(4)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"b":  ir.FromBool(true),
		"n":  ir.FromInt(26),
		"s":  ir.FromString("hey"),
		"xs": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
	})
	var buf bytes.Buffer
	if err := Encode(node, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	// goccy quotes keys that read as YAML 1.1 booleans, like "n"
	want := "b: true\n\"n\": 26\ns: hey\nxs:\n- 1\n- 2\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeHexonUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(ir.FromInt(1), &buf, EncodeFormat(format.HexonFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v, want ErrEncoding", err)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(); !f.IsJSON() {
		t.Errorf("default format %s", f)
	}
	if f := FormatFromOpts(EncodeFormat(format.YAMLFormat)); !f.IsYAML() {
		t.Errorf("got %s", f)
	}
}

func TestEncodeColorsCoverVisibleText(t *testing.T) {
	// with a pass-through color func the rendering is unchanged, and every
	// visible span goes through it
	var spans []string
	node := ir.FromMap(map[string]*ir.Node{
		"a":  ir.FromInt(1),
		"xs": ir.FromSlice([]*ir.Node{ir.FromBool(true)}),
	})
	var buf bytes.Buffer
	es := func(s *EncState) {
		s.Color = func(_ ir.Type, _ ColorAttr, v string) string {
			spans = append(spans, v)
			return v
		}
	}
	if err := Encode(node, &buf, es); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"xs\": [true]\n}"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, span := range spans {
		if strings.ContainsRune(span, '\n') {
			t.Errorf("colored span %q contains a newline", span)
		}
	}
}
