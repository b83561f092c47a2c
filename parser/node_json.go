package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// maxNodeDepth bounds nesting when printing a node tree as JSON.
const maxNodeDepth = 256

// JSON returns the schema as indented JSON with keys in source order.
// Schemas built in code (without a source node) are printed from their
// typed fields.
func (s *Schema) JSON() (string, error) {
	if s == nil {
		return "", nil
	}
	var buf bytes.Buffer
	var err error
	if s.node != nil {
		err = marshalNodeAsJSON(&buf, s.node, 0)
	} else {
		err = marshalSchemaFields(&buf, s, 0)
	}
	if err != nil {
		return "", fmt.Errorf("parser: failed to marshal schema: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("parser: failed to indent schema: %w", err)
	}
	return out.String(), nil
}

// maxJSONNodes bounds how many nodes one marshal may write once aliases are
// expanded.
const maxJSONNodes = 1 << 20

// marshalNodeAsJSON writes a yaml.Node to buf as compact JSON, preserving
// mapping key order. Aliases are expanded; an alias back to one of its own
// ancestors is an error, since JSON cannot express it.
func marshalNodeAsJSON(buf *bytes.Buffer, node *yaml.Node, depth int) error {
	e := &nodeEncoder{buf: buf, active: make(map[*yaml.Node]bool)}
	return e.encode(node, depth)
}

type nodeEncoder struct {
	buf     *bytes.Buffer
	active  map[*yaml.Node]bool
	written int
}

func (e *nodeEncoder) encode(node *yaml.Node, depth int) error {
	node = resolveAlias(node)
	if node == nil {
		e.buf.WriteString("null")
		return nil
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("nesting exceeds %d levels", maxNodeDepth)
	}
	e.written++
	if e.written > maxJSONNodes {
		return fmt.Errorf("aliases expand to more than %d nodes", maxJSONNodes)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			e.buf.WriteString("null")
			return nil
		}
		return e.encode(node.Content[0], depth)

	case yaml.MappingNode:
		if e.active[node] {
			return fmt.Errorf("recursive alias at line %d", node.Line)
		}
		e.active[node] = true
		defer delete(e.active, node)

		e.buf.WriteByte('{')
		first := true
		for key, val := range mappingEntries(node) {
			if !first {
				e.buf.WriteByte(',')
			}
			first = false
			if err := writeJSON(e.buf, key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if err := e.encode(val, depth+1); err != nil {
				return err
			}
		}
		e.buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		if e.active[node] {
			return fmt.Errorf("recursive alias at line %d", node.Line)
		}
		e.active[node] = true
		defer delete(e.active, node)

		e.buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.encode(item, depth+1); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
		return nil

	default:
		return writeScalar(e.buf, node)
	}
}

// writeScalar keeps the scalar's YAML type: numbers and booleans stay
// unquoted, everything else becomes a JSON string.
func writeScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			buf.WriteString(strconv.FormatBool(b))
			return nil
		}
	case "!!int", "!!float":
		if isJSONNumber(node.Value) {
			buf.WriteString(node.Value)
			return nil
		}
		var v any
		if err := node.Decode(&v); err == nil {
			if data, err := json.Marshal(v); err == nil {
				buf.Write(data)
				return nil
			}
		}
	}
	return writeJSON(buf, node.Value)
}

// isJSONNumber reports whether s is already a valid JSON number, such as the
// literal text of a number read from a JSON document.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func marshalSchemaFields(buf *bytes.Buffer, s *Schema, depth int) error {
	if s == nil {
		buf.WriteString("null")
		return nil
	}
	if depth > maxSchemaDepth {
		return fmt.Errorf("nesting exceeds %d levels", maxSchemaDepth)
	}

	buf.WriteByte('{')
	first := true
	field := func(key string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeJSON(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		return nil
	}
	for _, kv := range []struct{ key, value string }{
		{"$ref", s.Ref},
		{"type", s.Type},
		{"format", s.Format},
		{"title", s.Title},
		{"description", s.Description},
	} {
		if kv.value == "" {
			continue
		}
		if err := field(kv.key); err != nil {
			return err
		}
		if err := writeJSON(buf, kv.value); err != nil {
			return err
		}
	}
	if s.Properties.Len() > 0 {
		if err := field("properties"); err != nil {
			return err
		}
		buf.WriteByte('{')
		i := 0
		for name, prop := range s.Properties.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := writeJSON(buf, name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := marshalSchemaFields(buf, prop, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	if s.Items != nil {
		if err := field("items"); err != nil {
			return err
		}
		if err := marshalSchemaFields(buf, s.Items, depth+1); err != nil {
			return err
		}
	}
	if len(s.Required) > 0 {
		if err := field("required"); err != nil {
			return err
		}
		if err := writeJSON(buf, s.Required); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeJSON encodes v without HTML escaping; the renderer escapes on output.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
