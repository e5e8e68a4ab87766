// Where: internal/generator/validator.go
// What: Schema validator for notifier manifests.
// Why: Catch shape mistakes early while leaving required-field checks to the construct validator.
package generator

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/notifier.schema.json
var schemaFS embed.FS

const schemaName = "notifier.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateManifest checks the YAML content against the embedded schema and
// returns its JSON form. The schema validates types only; field presence
// is the construct validator's job so missing fields are reported together
// rather than one schema error at a time.
func validateManifest(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, err
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schema/" + schemaName)
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, strings.NewReader(string(raw))); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaName)
	})
	return compiledSchema, schemaErr
}
