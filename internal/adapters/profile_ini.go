package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"

	"cloudsweep/internal/types"
)

// AWSProfileStore reads the AWS shared config file and exposes its profiles.
// The file is parsed once at construction; section names keep their
// "profile " prefix stripped, so [default] and [profile dev] both appear
// under their bare names.
type AWSProfileStore struct {
	path     string
	sections map[string]map[string]string
}

func NewAWSProfileStore(path string) (*AWSProfileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".aws", "config")
		}
	}
	store := &AWSProfileStore{path: path, sections: map[string]map[string]string{}}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *AWSProfileStore) load() error {
	if s.path == "" {
		return nil
	}
	if _, err := os.Stat(s.path); err != nil {
		// No shared config file means no profiles, not a failure.
		return nil
	}
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse AWS shared config file").
			WithCause(err)
	}
	for section, raw := range v.AllSettings() {
		values, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimPrefix(section, "profile ")
		entry := map[string]string{}
		for key, value := range values {
			entry[key] = fmt.Sprint(value)
		}
		s.sections[name] = entry
	}
	return nil
}

// Path returns the shared config file the store was built from.
func (s *AWSProfileStore) Path() string {
	return s.path
}

func (s *AWSProfileStore) Profiles() ([]string, error) {
	profiles := make([]string, 0, len(s.sections))
	for name := range s.sections {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles, nil
}

func (s *AWSProfileStore) Config(profile string) (types.ProfileConfig, error) {
	entry, ok := s.sections[profile]
	if !ok {
		return types.ProfileConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("profile %s not found in %s", profile, s.path))
	}
	return types.ProfileConfig{
		Name:          profile,
		AccountID:     entry["account_id"],
		Region:        entry["region"],
		RoleARN:       entry["role_arn"],
		SourceProfile: entry["source_profile"],
	}, nil
}
