// Package tools indexes the labkit tools by name.
package tools

import (
	"sort"
	"sync"
)

// Tool describes one labkit tool and where it is reachable.
type Tool struct {
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Command  string `json:"command"`
	Endpoint string `json:"endpoint,omitempty"`
}

// Registry stores tools by name.
type Registry struct {
	repo map[string]Tool
	mu   sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{repo: make(map[string]Tool)}
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repo[t.Name] = t
}

// All returns a snapshot sorted by name.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.repo))
	for _, t := range r.repo {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.repo[name]
	return t, ok
}

// Builtin returns a registry with the four labkit tools.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(Tool{
		Name:     "transform",
		Summary:  "Uppercase and number every line of a text file",
		Command:  "labkit transform",
		Endpoint: "POST /v1/transform",
	})
	r.Register(Tool{
		Name:     "discount",
		Summary:  "Apply a percentage discount when it is at least 20%",
		Command:  "labkit discount",
		Endpoint: "GET /v1/discount",
	})
	r.Register(Tool{
		Name:     "iris",
		Summary:  "Explore the Iris dataset and render a 2x2 chart figure",
		Command:  "labkit iris",
		Endpoint: "GET /v1/iris/summary",
	})
	r.Register(Tool{
		Name:     "heroes",
		Summary:  "Superhero and animal polymorphism demo",
		Command:  "labkit heroes",
		Endpoint: "GET /v1/demo",
	})
	return r
}
