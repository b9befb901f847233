package corelib

import (
	"github.com/cwbudde/go-xpr/internal/errors"
	"github.com/cwbudde/go-xpr/internal/library"
	"github.com/goccy/go-yaml"
)

// LoadEnumsFromYAML parses a document of the form
//
//	Color:
//	  Red: 0
//	  Green: 1
//	  Blue: 2
//
// into enum registrations on lib. Hosts call this before installing lib
// into a Model so `Color.Red`-style constant folding and isEnum lookups
// see the loaded options.
func LoadEnumsFromYAML(lib *library.Library, data []byte) error {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.NewModelError("parsing enum YAML: %v", err)
	}
	for name, options := range doc {
		normalized := make(map[string]any, len(options))
		for option, v := range options {
			normalized[option] = normalizeYAMLScalar(v)
		}
		lib.AddEnum(name, normalized)
	}
	return nil
}

// normalizeYAMLScalar coerces goccy/go-yaml's decoded int representation
// to the int64 the rest of the engine standardizes on.
func normalizeYAMLScalar(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	default:
		return v
	}
}
