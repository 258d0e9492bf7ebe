package analysis

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// MaxIntensities caps how many emotions an intensity map reports
const MaxIntensities = 4

// Intensity is the 0-100 strength of one named emotion
type Intensity struct {
	Emotion string
	Value   int
}

// Intensities is an ordered emotion -> intensity mapping, strongest first.
// It serializes as an object whose keys keep slice order.
type Intensities []Intensity

// Names returns emotion names in order
func (in Intensities) Names() []string {
	names := make([]string, len(in))
	for i, it := range in {
		names[i] = it.Emotion
	}
	return names
}

// MarshalJSON writes the intensities as an ordered JSON object
func (in Intensities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(it.Emotion)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(it.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the intensities as an ordered YAML mapping
func (in Intensities) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, it := range in {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Emotion},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(it.Value)},
		)
	}
	return node, nil
}

// JSONSchema describes the serialized object form
func (Intensities) JSONSchema() *jsonschema.Schema {
	maxProps := uint64(MaxIntensities)
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Emotion name to intensity, strongest first",
		AdditionalProperties: &jsonschema.Schema{
			Type:    "integer",
			Minimum: json.Number("0"),
			Maximum: json.Number("100"),
		},
		MaxProperties: &maxProps,
	}
}
