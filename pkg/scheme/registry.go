package scheme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

// Scheme renders a frozen position as a notation string. Convert must be
// deterministic and total over valid positions.
type Scheme interface {
	// Name returns the registry name of the scheme.
	Name() string
	// Convert renders the position. It fails with
	// position.ErrPositionNotFrozen for drafts and with a
	// *position.IncompleteRuleTableError when a rule table has no entry
	// for the position.
	Convert(p position.Position) (string, error)
}

// UnknownSchemeError reports a Convert against a name no scheme is
// registered under.
type UnknownSchemeError struct {
	Name string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown scheme %q", e.Name)
}

// Registry holds named schemes. The zero value is ready to use and safe
// for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]Scheme
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds s under its name, replacing any scheme already
// registered under the same name.
func (r *Registry) Register(s Scheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemes == nil {
		r.schemes = map[string]Scheme{}
	}
	r.schemes[s.Name()] = s
}

// Convert renders p under the named scheme.
func (r *Registry) Convert(name string, p position.Position) (string, error) {
	r.mu.RLock()
	s, ok := r.schemes[name]
	r.mu.RUnlock()
	if !ok {
		return "", &UnknownSchemeError{Name: name}
	}
	if !p.IsFrozen() {
		return "", position.ErrPositionNotFrozen
	}
	return s.Convert(p)
}

// Names returns the registered scheme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the package registry with the built-in schemes.
var Default = func() *Registry {
	r := NewRegistry()
	r.Register(Baxter{})
	r.Register(TUPA{})
	return r
}()

// Register adds s to the default registry.
func Register(s Scheme) {
	Default.Register(s)
}

// Convert renders p under the named scheme via the default registry.
func Convert(name string, p position.Position) (string, error) {
	return Default.Convert(name, p)
}

// Names lists the default registry's scheme names.
func Names() []string {
	return Default.Names()
}
