// Where: internal/transformer/transformer_test.go
// What: Tests for input transformer serialization.
// Why: The template/paths split is the contract the delivery service resolves against.
package transformer

import (
	"strings"
	"testing"
)

func TestBuildLiteralsOnly(t *testing.T) {
	out, err := Build(map[string]any{
		"kind":  "stripe",
		"count": 2,
		"live":  false,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Template != `{"count":2,"kind":"stripe","live":false}` {
		t.Fatalf("unexpected template: %s", out.Template)
	}
	if out.PathsMap != nil {
		t.Fatalf("expected no paths map, got %v", out.PathsMap)
	}
}

func TestBuildTokensBecomePlaceholders(t *testing.T) {
	out, err := Build(map[string]any{
		"message": FromPath("$.detail-type"),
		"data":    FromPath("$.detail"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Template != `{"data":<detail>,"message":<detail-type>}` {
		t.Fatalf("unexpected template: %s", out.Template)
	}
	if len(out.PathsMap) != 2 {
		t.Fatalf("expected 2 paths, got %v", out.PathsMap)
	}
	if out.PathsMap["detail-type"] != "$.detail-type" {
		t.Fatalf("unexpected path for detail-type: %q", out.PathsMap["detail-type"])
	}
	if out.PathsMap["detail"] != "$.detail" {
		t.Fatalf("unexpected path for detail: %q", out.PathsMap["detail"])
	}
	if strings.Contains(out.Template, "$.detail") {
		t.Fatalf("raw path leaked into template: %s", out.Template)
	}
}

func TestBuildNestedStructure(t *testing.T) {
	out, err := Build(map[string]any{
		"event": map[string]any{
			"type": FromPath("$.detail-type"),
			"tags": []any{"stripe", FromPath("$.account")},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expected := `{"event":{"tags":["stripe",<account>],"type":<detail-type>}}`
	if out.Template != expected {
		t.Fatalf("expected %s, got %s", expected, out.Template)
	}
}

func TestBuildSharedPathSharesKey(t *testing.T) {
	out, err := Build(map[string]any{
		"a": FromPath("$.detail"),
		"b": FromPath("$.detail"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.PathsMap) != 1 {
		t.Fatalf("expected one shared path entry, got %v", out.PathsMap)
	}
	if out.Template != `{"a":<detail>,"b":<detail>}` {
		t.Fatalf("unexpected template: %s", out.Template)
	}
}

func TestBuildKeyCollisionGetsSuffix(t *testing.T) {
	out, err := Build(map[string]any{
		"a": FromPath("$.detail.type"),
		"b": FromPath("$.detail-type"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.PathsMap) != 2 {
		t.Fatalf("expected 2 distinct keys, got %v", out.PathsMap)
	}
	seen := map[string]bool{}
	for key, path := range out.PathsMap {
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
		if path != "$.detail.type" && path != "$.detail-type" {
			t.Fatalf("unexpected path %q", path)
		}
	}
}

func TestBuildDeterministicOutput(t *testing.T) {
	body := func() map[string]any {
		return map[string]any{
			"z": FromPath("$.detail"),
			"a": FromPath("$.detail-type"),
			"m": "literal",
		}
	}
	first, err := Build(body())
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := Build(body())
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if first.Template != second.Template {
		t.Fatalf("templates differ:\n%s\n%s", first.Template, second.Template)
	}
}

func TestBuildInvalidPath(t *testing.T) {
	if _, err := Build(map[string]any{"x": FromPath("detail")}); err == nil {
		t.Fatalf("expected error for path without $ prefix")
	}
	if _, err := Build(map[string]any{"x": FromPath("")}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestBuildNilBody(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatalf("expected error for nil body")
	}
}

func TestBuildNonSerializableLiteral(t *testing.T) {
	if _, err := Build(map[string]any{"fn": func() {}}); err == nil {
		t.Fatalf("expected error for non-serializable literal")
	}
}

func TestRefRejectsDirectJSONEncoding(t *testing.T) {
	ref := FromPath("$.detail")
	if _, err := ref.MarshalJSON(); err == nil {
		t.Fatalf("expected direct JSON encoding of a token to fail")
	}
}
