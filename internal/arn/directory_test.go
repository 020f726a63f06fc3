package arn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudsweep/internal/types"
)

func TestAccountDirectorySkipsProfilesWithoutAccountID(t *testing.T) {
	store := fakeProfiles{configs: map[string]types.ProfileConfig{
		"dev":     {Name: "dev", AccountID: "111"},
		"scratch": {Name: "scratch"},
		"prod":    {Name: "prod", AccountID: "222"},
	}}

	directory, err := NewAccountDirectory(store)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222"}, directory.Accounts())

	profile, err := directory.Resolve("222")
	require.NoError(t, err)
	assert.Equal(t, "prod", profile)
}

func TestAccountDirectoryEmptyStore(t *testing.T) {
	directory, err := NewAccountDirectory(fakeProfiles{configs: map[string]types.ProfileConfig{}})
	require.NoError(t, err)
	assert.Empty(t, directory.Accounts())
}
