package app

import (
	"cloudsweep/internal/registry"
)

// ServiceNames lists the services the registry has resource types for.
func (s Service) ServiceNames(provider string) ([]string, error) {
	if provider == "" {
		provider = registry.ProviderAWS
	}
	return s.Registry.Services(provider)
}

// TypeNames lists the resource types registered for a service.
func (s Service) TypeNames(provider string, service string) ([]string, error) {
	if provider == "" {
		provider = registry.ProviderAWS
	}
	return s.Registry.Types(provider, service)
}

// RegionNames lists the regions a service is available in; an empty service
// returns the unrestricted list.
func (s Service) RegionNames(service string) []string {
	if service == "" {
		return s.Regions.AllRegions()
	}
	return s.Regions.Regions(service)
}
