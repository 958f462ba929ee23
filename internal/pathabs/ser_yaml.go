package pathabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (p Path) MarshalYAML() (any, error) {
	return Serialize(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &DecodeError{Text: node.Value, Err: fmt.Errorf("line %d: expected a scalar", node.Line)}
	}
	return p.UnmarshalText([]byte(node.Value))
}
