package config

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringValueType is a source a configuration string can be resolved from.
type StringValueType interface {
	// HasValue checks if this value has data.
	HasValue(ctx context.Context) bool

	// GetValue retrieves the resolved string
	GetValue(ctx context.Context) (string, error)
}

// StringValue wraps the polymorphic source types so they can be used directly as
// yaml fields. A bare scalar is treated as a direct value.
type StringValue struct {
	InnerVal StringValueType
}

func (v *StringValue) HasValue(ctx context.Context) bool {
	if v == nil || v.InnerVal == nil {
		return false
	}
	return v.InnerVal.HasValue(ctx)
}

func (v *StringValue) GetValue(ctx context.Context) (string, error) {
	if v == nil || v.InnerVal == nil {
		return "", fmt.Errorf("no value configured")
	}
	return v.InnerVal.GetValue(ctx)
}

func (v *StringValue) UnmarshalYAML(value *yaml.Node) error {
	inner, err := stringValueUnmarshalYAML(value)
	if err != nil {
		return err
	}

	v.InnerVal = inner
	return nil
}

func (v StringValue) MarshalYAML() (interface{}, error) {
	return v.InnerVal, nil
}

// stringValueUnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func stringValueUnmarshalYAML(value *yaml.Node) (StringValueType, error) {
	if value.Kind == yaml.ScalarNode {
		return &StringValueDirect{Value: value.Value}, nil
	}

	// Ensure the node is a mapping node
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("string value expected a scalar or mapping node, got %s", KindToString(value.Kind))
	}

	var val StringValueType

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]

		switch keyNode.Value {
		case "value":
			val = &StringValueDirect{}
			break fieldLoop
		case "base64":
			val = &StringValueBase64{}
			break fieldLoop
		case "env_var":
			val = &StringValueEnvVar{}
			break fieldLoop
		case "path":
			val = &StringValueFile{}
			break fieldLoop
		}
	}

	if val == nil {
		return nil, fmt.Errorf("invalid structure for value type; does not match value, base64, env_var, path")
	}

	if err := value.Decode(val); err != nil {
		return nil, err
	}

	return val, nil
}

func KindToString(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "DocumentNode"
	case yaml.SequenceNode:
		return "SequenceNode"
	case yaml.MappingNode:
		return "MappingNode"
	case yaml.ScalarNode:
		return "ScalarNode"
	case yaml.AliasNode:
		return "AliasNode"
	default:
		return fmt.Sprintf("unknown (%d)", k)
	}
}
