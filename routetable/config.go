package routetable

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the document form of a route table.
//
//	routes:
//	  - name: user
//	    pattern: /users/:id
//	    methods: [GET, PUT]
//	  - name: post
//	    pattern: /posts(/:id)
//	    methods: GET
//	    defaults:
//	      id: latest
type Config struct {
	Routes []RouteConfig `yaml:"routes"`
}

// RouteConfig declares a single route.
type RouteConfig struct {
	// Name identifies the route for reverse lookups. Required and unique.
	Name string `yaml:"name"`

	// Pattern is the route pattern, such as "/users/:id".
	Pattern string `yaml:"pattern"`

	// Methods restricts the route to the given HTTP methods. Accepts a
	// single method or a list. Empty means any method.
	Methods Methods `yaml:"methods,omitempty"`

	// Defaults supplies parameter values used by Reverse when the caller
	// does not pass them.
	Defaults map[string]string `yaml:"defaults,omitempty"`

	// line is the position of the route in the source document, if known.
	line int
}

var routeConfigKeys = map[string]bool{
	"name":     true,
	"pattern":  true,
	"methods":  true,
	"defaults": true,
}

// UnmarshalYAML records the line of the route so validation errors can
// point at it. Unknown keys are rejected; node.Decode does not inherit
// the KnownFields setting of the outer decoder.
func (rc *RouteConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !routeConfigKeys[key.Value] {
				return fmt.Errorf("line %d: unknown route field %q", key.Line, key.Value)
			}
		}
	}

	type plain RouteConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*rc = RouteConfig(p)
	rc.line = node.Line
	return nil
}

// where describes the route for error messages.
func (rc RouteConfig) where(index int) string {
	s := fmt.Sprintf("route #%d", index)
	if rc.Name != "" {
		s = fmt.Sprintf("route %q", rc.Name)
	}
	if rc.line > 0 {
		s += fmt.Sprintf(" (line %d)", rc.line)
	}
	return s
}

// Methods is a list of HTTP methods, written in YAML either as a scalar or
// as a sequence.
type Methods []string

// UnmarshalYAML decodes the methods from either a YAML scalar or sequence.
func (m *Methods) UnmarshalYAML(node *yaml.Node) error {
	var raw []string
	switch node.Kind {
	case yaml.ScalarNode:
		raw = []string{node.Value}
	case yaml.SequenceNode:
		if err := node.Decode(&raw); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported YAML node kind %d for methods", node.Kind)
	}

	out := make(Methods, 0, len(raw))
	for _, v := range raw {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	*m = out
	return nil
}

// Contains reports whether method is allowed. An empty list allows every
// method.
func (m Methods) Contains(method string) bool {
	if len(m) == 0 {
		return true
	}
	for _, v := range m {
		if v == method {
			return true
		}
	}
	return false
}
