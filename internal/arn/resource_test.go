package arn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitResourceToken(t *testing.T) {
	tests := []struct {
		token        string
		resourceType string
		resourceID   string
	}{
		{"alarm/my-alarm", "alarm", "my-alarm"},
		{"alarm:my-alarm", "alarm", "my-alarm"},
		{"alarm", "alarm", ""},
		{"bucket/logs/2014", "bucket", "logs/2014"},
		{"bucket:logs:2014", "bucket", "logs:2014"},
		{"table/prod:users", "table", "prod:users"},
		{"*", "*", ""},
	}
	for _, tt := range tests {
		resourceType, resourceID := splitResourceToken(tt.token)
		assert.Equal(t, tt.resourceType, resourceType, "token %q", tt.token)
		assert.Equal(t, tt.resourceID, resourceID, "token %q", tt.token)
	}
}

func TestResourceMatchIgnoresIDPortion(t *testing.T) {
	locator := parseFixture(t, "arn:aws:cloudwatch:us-east-1:123456789:alarm/my-alarm")
	context := []string{"arn", "aws", "cloudwatch", "us-east-1", "123456789"}

	matches, err := locator.Resource().Matches(context)
	require.NoError(t, err)
	assert.Equal(t, []string{"alarm"}, matches)

	// An id that matches no type name must not leak into filtering.
	locator = parseFixture(t, "arn:aws:kinesis:us-east-1:123456789:stream/alarm")
	matches, err = locator.Resource().Matches([]string{"arn", "aws", "kinesis", "us-east-1", "123456789"})
	require.NoError(t, err)
	assert.Equal(t, []string{"stream"}, matches)
}
