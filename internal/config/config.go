package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source is a nested key/value configuration read through dotted-path
// lookups, e.g. Get("custom_fields.gmap", nil).
type Source struct {
	values map[string]any
}

// FromMap wraps an in-process configuration map.
func FromMap(values map[string]any) *Source {
	if values == nil {
		values = make(map[string]any)
	}
	return &Source{values: values}
}

// Load reads a YAML configuration file. A sibling .env file is loaded
// first when present, and ${VAR} references in the YAML payload expand
// against the environment before parsing.
func Load(path string, envFiles ...string) (*Source, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist outside local development.
	_ = godotenv.Load(files...)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	data = expandEnvVars(data)

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return FromMap(values), nil
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}

// Get walks the dotted path and returns the stored value, or def when any
// segment is missing or a non-map value shows up mid-path.
func (s *Source) Get(key string, def any) any {
	if s == nil || key == "" {
		return def
	}

	var current any = s.values
	for _, segment := range strings.Split(key, ".") {
		node, ok := asMap(current)
		if !ok {
			return def
		}
		current, ok = node[segment]
		if !ok {
			return def
		}
	}
	return current
}

// StringMap reads a key as a map of string to string, tolerating the
// map[any]any shape older YAML decoders produce. Missing or mismatched
// values yield nil.
func (s *Source) StringMap(key string) map[string]string {
	raw := s.Get(key, nil)
	node, ok := asMap(raw)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(node))
	for name, value := range node {
		str, ok := value.(string)
		if !ok {
			continue
		}
		out[name] = str
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asMap(value any) (map[string]any, bool) {
	switch node := value.(type) {
	case map[string]any:
		return node, true
	case map[any]any:
		converted := make(map[string]any, len(node))
		for key, v := range node {
			name, ok := key.(string)
			if !ok {
				continue
			}
			converted[name] = v
		}
		return converted, true
	default:
		return nil, false
	}
}
