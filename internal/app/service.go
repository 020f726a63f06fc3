package app

import (
	"context"

	"cloudsweep/internal/adapters"
	"cloudsweep/internal/arn"
	"cloudsweep/internal/policies"
	"cloudsweep/internal/ports"
	"cloudsweep/internal/registry"
)

type Service struct {
	Registry   ports.RegistryPort
	Profiles   ports.ProfileStorePort
	Sessions   ports.SessionPort
	Enumerator ports.EnumeratorPort
	Query      ports.QueryCompilerPort
	Regions    policies.RegionPolicy
}

type Options struct {
	AWSConfigFile string
	RegistryFile  string
}

// NewService wires the AWS adapters behind the ports. A registry overlay
// file, when configured, extends the built-in resource table.
func NewService(ctx context.Context, opts Options) (Service, error) {
	reg := registry.New()
	if opts.RegistryFile != "" {
		if err := reg.LoadOverlay(ctx, opts.RegistryFile); err != nil {
			return Service{}, err
		}
	}
	profiles, err := adapters.NewAWSProfileStore(opts.AWSConfigFile)
	if err != nil {
		return Service{}, err
	}
	return Service{
		Registry:   reg,
		Profiles:   profiles,
		Sessions:   adapters.NewAWSSessionAdapter(profiles, opts.AWSConfigFile),
		Enumerator: adapters.NewAWSEnumerator(),
		Query:      adapters.NewBexprQueryCompiler(),
		Regions:    policies.NewRegionPolicy(),
	}, nil
}

func (s Service) deps() arn.Deps {
	return arn.Deps{
		Registry:   s.Registry,
		Profiles:   s.Profiles,
		Sessions:   s.Sessions,
		Enumerator: s.Enumerator,
		Query:      s.Query,
		Regions:    s.Regions,
	}
}

// Locator parses input into a traversable locator bound to this service's
// collaborators.
func (s Service) Locator(input string) (*arn.ARN, error) {
	return arn.Parse(input, s.deps())
}
