package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Registry is a read-only set of profiles: builtins first in
// canonical order, then user profiles in the order encountered.
// Construct once at startup; safe for concurrent readers.
type Registry struct {
	names    []string
	profiles map[string]Profile
}

// NewRegistry creates a registry containing only the builtin profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile, len(builtins))}
	for _, p := range builtins {
		r.names = append(r.names, p.Name)
		r.profiles[p.Name] = p
	}
	return r
}

// NewRegistryWith creates a registry with the builtins plus the given
// user profiles. A user profile may shadow a builtin of the same name.
func NewRegistryWith(user ...Profile) (*Registry, error) {
	r := NewRegistry()
	for _, p := range user {
		p = p.withDefaults()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[p.Name]; !exists {
			r.names = append(r.names, p.Name)
		}
		r.profiles[p.Name] = p
	}
	return r, nil
}

// LoadDir builds a registry from the builtins plus every profile
// document found in dir. Documents load in lexical filename order.
// A missing directory yields a builtins-only registry.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRegistry(), nil
		}
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !documentExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var user []Profile
	for _, name := range names {
		p, err := LoadDocument(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		user = append(user, p)
	}
	return NewRegistryWith(user...)
}

// Names returns all profile names: builtins first, then user profiles
// in encounter order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the named profile from the registry.
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (available: %s)",
			ErrProfileNotFound, name, strings.Join(r.names, ", "))
	}
	return p, nil
}

// Load resolves an identifier that is either a registered profile
// name or a path to a profile document.
func (r *Registry) Load(nameOrPath string) (Profile, error) {
	if p, ok := r.profiles[nameOrPath]; ok {
		return p, nil
	}
	if documentExtensions[strings.ToLower(filepath.Ext(nameOrPath))] {
		return LoadDocument(nameOrPath)
	}
	return Profile{}, fmt.Errorf("%w: %q (available: %s)",
		ErrProfileNotFound, nameOrPath, strings.Join(r.names, ", "))
}

// ParseList splits a comma-separated list of profile identifiers,
// dropping empty entries. The CLI accepts profiles as "phone,laptop".
func ParseList(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// ResolveList loads every identifier in a comma-separated list.
func (r *Registry) ResolveList(csv string) ([]Profile, error) {
	var profiles []Profile
	for _, name := range ParseList(csv) {
		p, err := r.Load(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
