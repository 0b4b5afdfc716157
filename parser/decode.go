// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("parser: empty document")
	// ErrUnsupportedNode is returned for nodes the value tree cannot hold,
	// such as booleans and nulls.
	ErrUnsupportedNode = errors.New("parser: unsupported node")
	// ErrTooDeep is returned when nesting exceeds maxDepth, which also
	// bounds recursive aliases.
	ErrTooDeep = errors.New("parser: nesting too deep")
	// ErrTooLarge is returned when the value tree, counted after alias
	// expansion, would exceed maxNodes nodes.
	ErrTooLarge = errors.New("parser: document too large")
)

const (
	maxDepth = 1000
	maxNodes = 1 << 20
)

// builder converts a yaml.Node tree to a value tree. Aliases are expanded
// in place, so every expanded node counts against the budget.
type builder struct {
	nodes int
}

// Decode builds a value tree from YAML or JSON text.
// Mapping order is preserved and aliases are expanded.
func Decode(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: decode: %w", err)
	}
	return fromDocument(&doc)
}

// DecodeReader is like [Decode] but reads the first document from r.
func DecodeReader(r io.Reader) (Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("parser: decode: %w", err)
	}
	return fromDocument(&doc)
}

func fromDocument(doc *yaml.Node) (Value, error) {
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	var b builder
	return b.fromNode(doc, 0)
}

func (b *builder) fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w at line %d, column %d", ErrTooDeep, n.Line, n.Column)
	}
	if b.nodes++; b.nodes > maxNodes {
		return nil, fmt.Errorf("%w: more than %d nodes at line %d, column %d", ErrTooLarge, maxNodes, n.Line, n.Column)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return b.fromNode(n.Content[0], depth+1)
	case yaml.AliasNode:
		return b.fromNode(n.Alias, depth+1)
	case yaml.MappingNode:
		obj := make(Object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind == yaml.AliasNode {
				key = key.Alias
			}
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar key at line %d, column %d", ErrUnsupportedNode, key.Line, key.Column)
			}
			v, err := b.fromNode(val, depth+1)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Name: key.Value, Value: v})
		}
		return obj, nil
	case yaml.SequenceNode:
		list := make(List, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := b.fromNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return nil, fmt.Errorf("%w: kind %d at line %d, column %d", ErrUnsupportedNode, n.Kind, n.Line, n.Column)
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!str", "!!timestamp", "!!binary":
		return String(n.Value), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("parser: number at line %d, column %d: %w", n.Line, n.Column, err)
		}
		return Number(f), nil
	default:
		return nil, fmt.Errorf("%w: %s at line %d, column %d", ErrUnsupportedNode, tag, n.Line, n.Column)
	}
}
