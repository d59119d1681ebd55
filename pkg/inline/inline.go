// Package inline renders Go values as compact single-line YAML flow
// documents, e.g. {max_length: 10, trim: true}. It exists for diagnostic
// string representations — debug dumps of validator configuration — and is
// not a serialization format: there is no decoder.
package inline

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Encode returns v as a single-line YAML flow document. Map keys are
// emitted in sorted order, so output is deterministic for map inputs.
func Encode(v any) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", err
	}
	flow(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// flow forces flow style on every mapping and sequence so the document
// stays on one line.
func flow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		flow(c)
	}
}
