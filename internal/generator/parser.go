// Where: internal/generator/parser.go
// What: Notifier manifest parser.
// Why: Turn the declarative YAML manifest into a typed manifest struct.
package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/manifest"
)

// Parse validates the manifest content against the schema and decodes it.
func Parse(content []byte) (manifest.Notifier, error) {
	if _, err := validateManifest(content); err != nil {
		return manifest.Notifier{}, fmt.Errorf("validate manifest: %w", err)
	}

	var m manifest.Notifier
	if err := yaml.Unmarshal(content, &m); err != nil {
		return manifest.Notifier{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (manifest.Notifier, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return manifest.Notifier{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := Parse(content)
	if err != nil {
		return manifest.Notifier{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}
