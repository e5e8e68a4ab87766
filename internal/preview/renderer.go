// Where: internal/preview/renderer.go
// What: Render a human-readable summary of the composed resources.
// Why: Let operators review what synth will declare before deploying anything.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/manifest"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type stackSummary struct {
	RuleID   string
	PolicyID string
	State    string
	EventBus string
	Topic    string
	Events   []string
	Template string
	Paths    map[string]string
}

// Render summarizes a composed notifier against its manifest.
func Render(m manifest.Notifier, n *notifier.Notifier) (string, error) {
	if n == nil {
		return "", fmt.Errorf("notifier is nil")
	}
	summary := stackSummary{
		RuleID:   n.RuleID,
		PolicyID: n.PolicyID,
		State:    n.Rule.State,
		EventBus: m.EventBus,
		Topic:    m.Topic,
		Events:   m.Events,
	}
	if len(n.Rule.Targets) > 0 && n.Rule.Targets[0].InputTransformer != nil {
		summary.Template = n.Rule.Targets[0].InputTransformer.InputTemplate
		summary.Paths = n.Rule.Targets[0].InputTransformer.InputPathsMap
	}

	tmpl, err := loadTemplate("summary.tmpl")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
