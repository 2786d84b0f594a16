package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hexon-format/go-hexon/format"
	"github.com/hexon-format/go-hexon/ir"
	"github.com/hexon-format/go-hexon/token"
)

type EncState struct {
	depth, indent int
	escape        bool

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w. The default format is JSON; see the package
// doc for the rendering contract. No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encode(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: cannot encode to %s", ErrEncoding, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	default:
		panic("type")
	}
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatInt(node.Int64, 10)
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := "false"
	if node.Bool {
		v = "true"
	}
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	if es.escape {
		v = token.Quote(node.String)
	} else {
		// verbatim between quotes; embedded quotes and backslashes
		// pass through untouched
		v = `"` + node.String + `"`
	}
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

// encodeArray renders single-line, comma-and-space separated. Elements
// are rendered at depth zero: a nested object inside an array restarts
// its indentation.
func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ArrayType, SepColor, "[")
	if err := writeString(w, open); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if i > 0 {
			sep := applyColor(es, ir.ArrayType, SepColor, ", ")
			if err := writeString(w, sep); err != nil {
				return err
			}
		}
		sub := *es
		sub.depth = 0
		if err := encode(elt, w, &sub); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	indentStr := strings.Repeat(" ", es.depth+es.indent)
	for i, yField := range node.Fields {
		sep := "\n"
		if i > 0 {
			sep = applyColor(es, ir.ObjectType, SepColor, ",") + "\n"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		key := applyColor(es, ir.ObjectType, FieldColor, `"`+yField.String+`"`)
		if err := writeString(w, indentStr+key); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ":")+" "); err != nil {
			return err
		}
		sub := *es
		sub.depth = es.depth + es.indent
		if err := encode(node.Values[i], w, &sub); err != nil {
			return err
		}
	}
	closing := "\n" + strings.Repeat(" ", es.depth) + applyColor(es, ir.ObjectType, SepColor, "}")
	return writeString(w, closing)
}
