package ports

import "cloudsweep/internal/types"

// ProfileStorePort reads the local credential profile directory.
type ProfileStorePort interface {
	Profiles() ([]string, error)
	Config(profile string) (types.ProfileConfig, error)
}
