// Package styletree holds insertion-ordered style tables and the nested-key
// introspection used to check them.
package styletree

import (
	"fmt"

	"gopkg.in/yaml.v3"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

// Tree is a mapping whose key order is the insertion order. Values are
// scalars or nested *Tree.
type Tree struct {
	keys   []string
	values map[string]any
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{values: make(map[string]any)}
}

// Set stores value under key and returns t for chaining. Re-setting a key
// keeps its original position.
func (t *Tree) Set(key string, value any) *Tree {
	if t.values == nil {
		t.values = make(map[string]any)
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	return t
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Subtree returns the nested tree under key, if any.
func (t *Tree) Subtree(key string) (*Tree, bool) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Tree)
	return sub, ok && sub != nil
}

// Lookup follows path through nested trees.
func (t *Tree) Lookup(path ...string) (any, bool) {
	var current any = t
	for _, key := range path {
		node, ok := current.(*Tree)
		if !ok {
			return nil, false
		}
		if current, ok = node.Get(key); !ok {
			return nil, false
		}
	}
	return current, true
}

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of keys.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// IsLeaf reports whether no value of t is itself a non-nil tree.
func (t *Tree) IsLeaf() bool {
	for _, key := range t.Keys() {
		if child, ok := t.values[key].(*Tree); ok && child != nil {
			return false
		}
	}
	return true
}

func (t *Tree) children() []*Tree {
	var out []*Tree
	for _, key := range t.Keys() {
		if child, ok := t.values[key].(*Tree); ok && child != nil {
			out = append(out, child)
		}
	}
	return out
}

// UnmarshalYAML decodes a mapping node, keeping the document key order.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: style tree must be a mapping", node.Line)
	}

	*t = Tree{values: make(map[string]any, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: style tree keys must be scalars", keyNode.Line)
		}

		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}
		switch valueNode.Kind {
		case yaml.MappingNode:
			child := New()
			if err := child.UnmarshalYAML(valueNode); err != nil {
				return err
			}
			t.Set(keyNode.Value, child)
		default:
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return err
			}
			t.Set(keyNode.Value, value)
		}
	}
	return nil
}

// MarshalYAML encodes the tree as a mapping in key order.
func (t *Tree) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range t.Keys() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(t.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// FromYAML decodes a style tree document. path is used for error reporting.
func FromYAML(path string, data []byte) (*Tree, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, paperrors.NewParseError(path, lineOf(err), err)
	}
	if len(root.Content) == 0 {
		return New(), nil
	}

	tree := New()
	if err := tree.UnmarshalYAML(&root); err != nil {
		return nil, paperrors.NewParseError(path, lineOf(err), err)
	}
	return tree, nil
}
