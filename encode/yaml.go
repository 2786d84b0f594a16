package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/hexon-format/go-hexon/ir"
)

// encodeYAML marshals the tree through goccy/go-yaml. Objects go through
// yaml.MapSlice so the lexicographic field order of the tree survives
// into the YAML document.
func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}

func yamlValue(node *ir.Node) any {
	switch node.Type {
	case ir.NumberType:
		return node.Int64
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = yamlValue(elt)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, yField := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   yField.String,
				Value: yamlValue(node.Values[i]),
			}
		}
		return res
	default:
		panic("type")
	}
}
