package writer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsontab/jsontab/pkg/flatten"
)

func writeYAMLRows(path string, rows flatten.RowSet) error {
	raw, err := json.Marshal(rowsValue(rows))
	if err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	return writeYAML(path, raw)
}

func writeYAMLSchema(path string, doc []byte) error {
	return writeYAML(path, doc)
}

// writeYAML re-encodes a JSON document as YAML. JSON is a YAML subset, so
// parsing into a yaml.Node keeps the original key order through the
// round trip. Node styles are cleared so the output renders in block form
// instead of the flow form it was parsed from.
func writeYAML(path string, raw []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("formatting YAML: %w", err)
	}
	clearStyles(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("formatting YAML: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func clearStyles(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyles(c)
	}
}
