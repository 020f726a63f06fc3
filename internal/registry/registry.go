// Package registry holds the resource-type metadata table: for each
// (provider, service, type) triple, how that resource is enumerated against
// the provider API. Built-in entries can be extended from a YAML overlay
// file.
package registry

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cloudsweep/internal/types"
)

type Registry struct {
	entries map[string]types.ResourceMeta
}

func New() *Registry {
	r := &Registry{entries: map[string]types.ResourceMeta{}}
	for _, meta := range builtinResources {
		r.entries[key(ProviderAWS, meta.Service, meta.Type)] = meta
	}
	return r
}

const ProviderAWS = "aws"

func key(provider string, service string, resourceType string) string {
	return provider + "/" + service + "/" + resourceType
}

// Services returns the sorted distinct services the provider has resource
// types for. Unknown providers yield an empty list, not an error.
func (r *Registry) Services(provider string) ([]string, error) {
	if provider != ProviderAWS {
		return nil, nil
	}
	seen := map[string]struct{}{}
	for _, meta := range r.entries {
		seen[meta.Service] = struct{}{}
	}
	services := make([]string, 0, len(seen))
	for service := range seen {
		services = append(services, service)
	}
	sort.Strings(services)
	return services, nil
}

// Types returns the sorted resource type names registered for the service.
func (r *Registry) Types(provider string, service string) ([]string, error) {
	if provider != ProviderAWS {
		return nil, nil
	}
	var names []string
	for _, meta := range r.entries {
		if meta.Service == service {
			names = append(names, meta.Type)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Lookup returns the enumeration metadata for one resource type.
func (r *Registry) Lookup(provider string, service string, resourceType string) (types.ResourceMeta, error) {
	meta, ok := r.entries[key(provider, service, resourceType)]
	if !ok {
		return types.ResourceMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no registry entry for %s:%s:%s", provider, service, resourceType))
	}
	return meta, nil
}
