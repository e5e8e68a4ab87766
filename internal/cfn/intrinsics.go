// Where: internal/cfn/intrinsics.go
// What: Intrinsic function value types.
// Why: Reference resources declared in the same template from property values.
package cfn

import (
	"encoding/json"
	"fmt"
)

// Ref marshals to {"Ref": "<LogicalID>"}.
type Ref struct {
	LogicalID string
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.LogicalID == "" {
		return nil, fmt.Errorf("Ref: logical ID is required")
	}
	return json.Marshal(map[string]string{"Ref": r.LogicalID})
}

// GetAtt marshals to {"Fn::GetAtt": ["<LogicalID>", "<Attribute>"]}.
type GetAtt struct {
	LogicalID string
	Attribute string
}

func (g GetAtt) MarshalJSON() ([]byte, error) {
	if g.LogicalID == "" || g.Attribute == "" {
		return nil, fmt.Errorf("Fn::GetAtt: logical ID and attribute are required")
	}
	return json.Marshal(map[string][]string{"Fn::GetAtt": {g.LogicalID, g.Attribute}})
}

// Sub marshals to {"Fn::Sub": "<template>"}.
type Sub struct {
	Template string
}

func (s Sub) MarshalJSON() ([]byte, error) {
	if s.Template == "" {
		return nil, fmt.Errorf("Fn::Sub: template string is empty")
	}
	return json.Marshal(map[string]string{"Fn::Sub": s.Template})
}
