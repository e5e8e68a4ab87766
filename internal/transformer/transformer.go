// Where: internal/transformer/transformer.go
// What: EventBridge input transformer serialization.
// Why: Turn a message body of literals and path tokens into InputPathsMap plus InputTemplate.
package transformer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Ref is a lazy reference to a JSON path inside the delivered event.
// It is resolved by EventBridge at delivery time, never at composition
// time. Refs are tagged values, distinct from string literals, so the
// serializer can tell which leaves need placeholder substitution.
type Ref struct {
	path string
}

// FromPath returns a reference to a JSON path such as "$.detail-type".
// The path is validated when the surrounding body is built.
func FromPath(path string) Ref {
	return Ref{path: path}
}

// Path returns the referenced JSON path.
func (r Ref) Path() string {
	return r.path
}

// MarshalJSON rejects direct JSON encoding. A Ref must pass through Build
// so it becomes a placeholder; encoding it as plain JSON would silently
// freeze the token into a literal.
func (r Ref) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("event path %q: extraction token cannot be JSON-encoded directly", r.path)
}

// Transformer is the serialized transform attached to a rule target.
type Transformer struct {
	PathsMap map[string]string
	Template string
}

// Build serializes a message body into an input transformer. Literals
// round-trip as JSON; every Ref leaf becomes a <key> placeholder with a
// matching InputPathsMap entry. Output is deterministic: object keys are
// emitted sorted and identical paths share one placeholder key.
func Build(body any) (Transformer, error) {
	if body == nil {
		return Transformer{}, fmt.Errorf("message body is nil")
	}
	state := &buildState{
		keysByPath: map[string]string{},
		pathsByKey: map[string]string{},
	}
	var sb strings.Builder
	if err := state.write(&sb, body); err != nil {
		return Transformer{}, err
	}
	out := Transformer{Template: sb.String()}
	if len(state.keysByPath) > 0 {
		out.PathsMap = map[string]string{}
		for path, key := range state.keysByPath {
			out.PathsMap[key] = path
		}
	}
	return out, nil
}

type buildState struct {
	keysByPath map[string]string
	pathsByKey map[string]string
}

func (s *buildState) write(sb *strings.Builder, value any) error {
	switch typed := value.(type) {
	case Ref:
		key, err := s.keyFor(typed.Path())
		if err != nil {
			return err
		}
		sb.WriteString("<" + key + ">")
		return nil
	case *Ref:
		if typed == nil {
			return fmt.Errorf("extraction token is nil")
		}
		return s.write(sb, *typed)
	case map[string]any:
		return s.writeObject(sb, typed)
	case []any:
		sb.WriteString("[")
		for i, elem := range typed {
			if i > 0 {
				sb.WriteString(",")
			}
			if err := s.write(sb, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		sb.WriteString("]")
		return nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode message literal: %w", err)
		}
		sb.Write(encoded)
		return nil
	}
}

func (s *buildState) writeObject(sb *strings.Builder, object map[string]any) error {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sb.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(",")
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("encode message key %q: %w", key, err)
		}
		sb.Write(encodedKey)
		sb.WriteString(":")
		if err := s.write(sb, object[key]); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	sb.WriteString("}")
	return nil
}

// keyFor derives a placeholder key for a path. Identical paths share one
// key; distinct paths whose derived keys collide get a numeric suffix.
func (s *buildState) keyFor(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("event path is empty")
	}
	if !strings.HasPrefix(path, "$") {
		return "", fmt.Errorf("event path %q must start with $", path)
	}
	if key, ok := s.keysByPath[path]; ok {
		return key, nil
	}

	key := sanitizeKey(path)
	candidate := key
	for n := 2; ; n++ {
		owner, taken := s.pathsByKey[candidate]
		if !taken || owner == path {
			break
		}
		candidate = fmt.Sprintf("%s-%d", key, n)
	}
	s.keysByPath[path] = candidate
	s.pathsByKey[candidate] = path
	return candidate, nil
}

func sanitizeKey(path string) string {
	trimmed := strings.TrimPrefix(path, "$.")
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		trimmed = "event"
	}
	var sb strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
