package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// GroupSuffix marks a grouped control key such as "colors[]". Grouped keys
// always decode to an array, even with a single value.
const GroupSuffix = "[]"

// Field is one captured value. Array fields come from grouped controls or
// repeated keys.
type Field struct {
	Name   string
	Values []string
	Array  bool
}

// Value returns the first value, or "" when none was posted.
func (f Field) Value() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

// Fields is the captured field set, kept sorted by name so serialisation is
// deterministic.
type Fields []Field

// NewFields builds a sorted field set from posted values. Keys ending in
// GroupSuffix are stored without it and marked as arrays.
func NewFields(values url.Values) Fields {
	if len(values) == 0 {
		return nil
	}
	byName := make(map[string]*Field, len(values))
	for key, vals := range values {
		name, grouped := strings.CutSuffix(key, GroupSuffix)
		if name == "" {
			continue
		}
		field, ok := byName[name]
		if !ok {
			field = &Field{Name: name}
			byName[name] = field
		}
		field.Values = append(field.Values, vals...)
		field.Array = field.Array || grouped || len(field.Values) > 1
	}

	out := make(Fields, 0, len(byName))
	for _, field := range byName {
		out = append(out, *field)
	}
	slices.SortFunc(out, func(a, b Field) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Empty reports whether no field was captured.
func (f Fields) Empty() bool {
	return len(f) == 0
}

// Get looks a field up by name.
func (f Fields) Get(name string) (Field, bool) {
	idx, ok := slices.BinarySearchFunc(f, name, func(field Field, target string) int {
		return strings.Compare(field.Name, target)
	})
	if !ok {
		return Field{}, false
	}
	return f[idx], true
}

// Value returns the first value of the named field.
func (f Fields) Value(name string) string {
	field, _ := f.Get(name)
	return field.Value()
}

// Names lists the field names in order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for _, field := range f {
		names = append(names, field.Name)
	}
	return names
}

// MarshalYAML emits an ordered mapping; arrays become sequences.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range f {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name}
		var value *yaml.Node
		if field.Array {
			value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, v := range field.Values {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
			}
		} else {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Value()}
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// UnmarshalYAML accepts a mapping of scalars or scalar sequences.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("submission: content must be a mapping, got kind %d", node.Kind)
	}
	values := url.Values{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch value.Kind {
		case yaml.ScalarNode:
			values[key] = []string{value.Value}
		case yaml.SequenceNode:
			items := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				items = append(items, item.Value)
			}
			values[key+GroupSuffix] = items
		default:
			return fmt.Errorf("submission: unsupported value for %q", key)
		}
	}
	*f = NewFields(values)
	return nil
}

// MarshalJSON emits an ordered object; arrays become JSON arrays.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value any = field.Value()
		if field.Array {
			value = field.Values
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
