// Where: internal/cfn/template.go
// What: Minimal CloudFormation template model.
// Why: Emit the notifier resources as a deployable template without a full CFN library.
package cfn

import (
	"bytes"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// FormatVersion is the only template format version CloudFormation accepts.
const FormatVersion = "2010-09-09"

// Template is a declarative CloudFormation document.
type Template struct {
	AWSTemplateFormatVersion string              `json:"AWSTemplateFormatVersion"`
	Description              string              `json:"Description,omitempty"`
	Resources                map[string]Resource `json:"Resources"`
}

// Resource is a single CloudFormation resource entry.
type Resource struct {
	Type       string   `json:"Type"`
	Properties any      `json:"Properties,omitempty"`
	DependsOn  []string `json:"DependsOn,omitempty"`
}

// NewTemplate returns an empty template with the format version set.
func NewTemplate(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: FormatVersion,
		Description:              description,
		Resources:                map[string]Resource{},
	}
}

// Add registers a resource under a logical ID.
// Duplicate logical IDs are rejected so a construct cannot silently
// overwrite resources composed by another instance.
func (t *Template) Add(logicalID string, resource Resource) error {
	if logicalID == "" {
		return fmt.Errorf("logical ID is required")
	}
	if resource.Type == "" {
		return fmt.Errorf("resource %s: type is required", logicalID)
	}
	if t.Resources == nil {
		t.Resources = map[string]Resource{}
	}
	if _, exists := t.Resources[logicalID]; exists {
		return fmt.Errorf("duplicate logical ID %s", logicalID)
	}
	t.Resources[logicalID] = resource
	return nil
}

// JSON renders the template as indented JSON. HTML escaping is disabled
// so input-transformer placeholders stay readable as <key>.
func (t *Template) JSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(t); err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders the template as YAML via its JSON form, so intrinsic
// marshaling stays identical between the two output formats.
func (t *Template) YAML() ([]byte, error) {
	jsonData, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}
	out, err := yaml.JSONToYAML(jsonData)
	if err != nil {
		return nil, fmt.Errorf("convert template to yaml: %w", err)
	}
	return out, nil
}
