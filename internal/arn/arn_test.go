package arn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, input string) *ARN {
	t.Helper()
	reg, profiles, enum := cloudwatchFixture()
	locator, err := Parse(input, testDeps(reg, profiles, enum))
	require.NoError(t, err)
	return locator
}

func TestParseDefaultsMissingFieldsToWildcard(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"arn", "arn:*:*:*:*:*"},
		{"arn:aws", "arn:aws:*:*:*:*"},
		{"arn:aws:cloudwatch", "arn:aws:cloudwatch:*:*:*"},
		{"arn:aws:cloudwatch:us-east-1:123456789:alarm/my-alarm", "arn:aws:cloudwatch:us-east-1:123456789:alarm/my-alarm"},
	}
	for _, tt := range tests {
		locator := parseFixture(t, tt.input)
		assert.Equal(t, tt.want, locator.String())
	}
}

func TestParseKeepsExtraColonsInResourceField(t *testing.T) {
	locator := parseFixture(t, "arn:aws:s3:us-east-1:123456789:bucket:logs:2014")
	assert.Equal(t, "bucket:logs:2014", locator.Resource().Pattern())
	assert.Equal(t, "arn:aws:s3:us-east-1:123456789:bucket:logs:2014", locator.String())
}

func TestParseSplitsQuerySuffix(t *testing.T) {
	reg, profiles, enum := cloudwatchFixture()
	deps := testDeps(reg, profiles, enum)
	compiler := deps.Query.(*fakeQueryCompiler)

	locator, err := Parse("arn:aws:cloudwatch:*:*:alarm|StateValue == `OK`", deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"StateValue == `OK`"}, compiler.compiled)
	assert.NotNil(t, locator.Query())
	assert.Equal(t, "StateValue == `OK`", locator.QueryExpression())
	assert.Equal(t, "arn:aws:cloudwatch:*:*:alarm", locator.String())
}

func TestParseQueryWithoutCompilerFails(t *testing.T) {
	reg, profiles, enum := cloudwatchFixture()
	deps := testDeps(reg, profiles, enum)
	deps.Query = nil
	_, err := Parse("arn:aws:*:*:*:*|a == b", deps)
	require.Error(t, err)
}

func TestLevelAccessorsFollowFieldOrder(t *testing.T) {
	locator := parseFixture(t, "arn:aws:cloudwatch:us-east-1:123456789:alarm")
	assert.Equal(t, "arn", locator.Scheme().Pattern())
	assert.Equal(t, "aws", locator.Provider().Pattern())
	assert.Equal(t, "cloudwatch", locator.Service().Pattern())
	assert.Equal(t, "us-east-1", locator.Region().Pattern())
	assert.Equal(t, "123456789", locator.Account().Pattern())
	assert.Equal(t, "alarm", locator.Resource().Pattern())
	for i := 0; i < locator.Levels(); i++ {
		assert.Same(t, locator.Level(i), []*Level{
			locator.Scheme(), locator.Provider(), locator.Service(),
			locator.Region(), locator.Account(), locator.Resource(),
		}[i])
	}
}
