package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSharedConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAWSProfileStoreParsesProfiles(t *testing.T) {
	path := writeSharedConfig(t, `[default]
region = us-east-1
account_id = 111111111111

[profile dev]
region = us-west-2
account_id = 222222222222

[profile admin]
role_arn = arn:aws:iam::222222222222:role/admin
source_profile = dev
account_id = 333333333333
`)
	store, err := NewAWSProfileStore(path)
	require.NoError(t, err)

	profiles, err := store.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "default", "dev"}, profiles)

	cfg, err := store.Config("dev")
	require.NoError(t, err)
	assert.Equal(t, "222222222222", cfg.AccountID)
	assert.Equal(t, "us-west-2", cfg.Region)

	cfg, err = store.Config("admin")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::222222222222:role/admin", cfg.RoleARN)
	assert.Equal(t, "dev", cfg.SourceProfile)

	_, err = store.Config("missing")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestAWSProfileStoreMissingFileMeansNoProfiles(t *testing.T) {
	store, err := NewAWSProfileStore(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)

	profiles, err := store.Profiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
