package ports

import "cloudsweep/internal/types"

// RegistryPort is the resource-type metadata registry: which services a
// provider exposes, which resource types a service has, and how each type is
// enumerated against the provider API.
type RegistryPort interface {
	Services(provider string) ([]string, error)
	Types(provider string, service string) ([]string, error)
	Lookup(provider string, service string, resourceType string) (types.ResourceMeta, error)
}
