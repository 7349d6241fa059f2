package bimap

import (
	"fmt"
	"iter"

	yamlv3 "gopkg.in/yaml.v3"
)

// The YAML form of a bidirectional map is the YAML form of a plain map
// holding the same pairs: one mapping entry per pair, in the map's
// iteration order. Decoding replays one Insert per entry in document
// order, with the same resolution for colliding values as JSON decoding.

// MarshalYAML is a custom marshaller. Pairs become the entries of a
// mapping node, in the same order All iterates them.
func (m *BiHashMap[L, R]) MarshalYAML() (any, error) {
	return marshalYAMLPairs(m.Len(), m.All())
}

// UnmarshalYAML is a custom unmarshaller with the same replay and
// replacement semantics as UnmarshalJSON: entries are inserted in
// document order, failure leaves the receiver untouched, success
// replaces its contents wholesale, and a null node is a no-op. The
// member count of the mapping pre-sizes the map.
func (m *BiHashMap[L, R]) UnmarshalYAML(node *yamlv3.Node) error {
	if node.Kind == yamlv3.AliasNode {
		node = node.Alias
	}
	if node.Tag == "!!null" {
		return nil
	}
	fresh := newBiHashMapSized[L, R](len(node.Content) / 2)
	if err := unmarshalYAMLPairs(node, func(left L, right R) {
		fresh.Insert(left, right)
	}); err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// MarshalYAML is a custom marshaller. Pairs become the entries of a
// mapping node, in ascending left order.
func (m *BiTreeMap[L, R]) MarshalYAML() (any, error) {
	return marshalYAMLPairs(m.Len(), m.All())
}

// UnmarshalYAML is a custom unmarshaller with the same replay and
// replacement semantics as the BiHashMap implementation.
func (m *BiTreeMap[L, R]) UnmarshalYAML(node *yamlv3.Node) error {
	if node.Kind == yamlv3.AliasNode {
		node = node.Alias
	}
	if node.Tag == "!!null" {
		return nil
	}
	fresh := NewBiTreeMap[L, R]()
	if err := unmarshalYAMLPairs(node, func(left L, right R) {
		fresh.Insert(left, right)
	}); err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// marshalYAMLPairs renders a mapping node with one entry per pair, in the
// order the sequence yields them. Mapping node content alternates key and
// value nodes.
func marshalYAMLPairs[L, R any](n int, pairs iter.Seq2[L, R]) (*yamlv3.Node, error) {
	node := &yamlv3.Node{
		Kind:    yamlv3.MappingNode,
		Tag:     "!!map",
		Content: make([]*yamlv3.Node, 0, 2*n),
	}
	for left, right := range pairs {
		keyNode := &yamlv3.Node{}
		if err := keyNode.Encode(left); err != nil {
			return nil, err
		}
		valueNode := &yamlv3.Node{}
		if err := valueNode.Encode(right); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// unmarshalYAMLPairs walks a mapping node's entries in document order and
// hands each decoded pair to insert. Decoding through map[L]R would lose
// both the entry order and any duplicate keys.
func unmarshalYAMLPairs[L, R any](node *yamlv3.Node, insert func(L, R)) error {
	if node.Kind != yamlv3.MappingNode {
		return fmt.Errorf("bimap: cannot decode YAML %s into a bimap, expected a mapping", node.Tag)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var left L
		if err := node.Content[i].Decode(&left); err != nil {
			return err
		}
		var right R
		if err := node.Content[i+1].Decode(&right); err != nil {
			return err
		}
		insert(left, right)
	}
	return nil
}
