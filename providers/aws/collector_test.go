package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtally/cloudtally/types"
)

func TestRegistryOrderIsStable(t *testing.T) {
	first := Registry()
	second := Registry()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name(), second[i].Name())
	}
}

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Registry() {
		assert.False(t, seen[c.Name()], "duplicate collector name %q", c.Name())
		seen[c.Name()] = true
	}
}

func TestRegistryPartition(t *testing.T) {
	all := Registry()
	regionalOnly := RegionalCollectors()
	globalOnly := GlobalCollectors()

	assert.Equal(t, len(all), len(regionalOnly)+len(globalOnly))

	for _, c := range regionalOnly {
		assert.False(t, c.Global(), "%s listed as regional", c.Name())
	}
	for _, c := range globalOnly {
		assert.True(t, c.Global(), "%s listed as global", c.Name())
	}
}

func TestRegistryGlobalServices(t *testing.T) {
	wantGlobal := []string{
		"s3", "cloudfront", "route53",
		"iam-user", "iam-role",
		"org-scp", "org-tagpolicy", "config",
	}

	globalOnly := GlobalCollectors()
	require.Len(t, globalOnly, len(wantGlobal))
	for i, c := range globalOnly {
		assert.Equal(t, wantGlobal[i], c.Name())
	}
}

func TestRegistryResourceTypes(t *testing.T) {
	for _, c := range Registry() {
		assert.NotEmpty(t, c.ResourceType(), "collector %s has no resource type", c.Name())
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("s3")
	require.True(t, ok)
	assert.Equal(t, types.TypeS3Bucket, c.ResourceType())
	assert.True(t, c.Global())

	c, ok = ByName("ec2")
	require.True(t, ok)
	assert.Equal(t, types.TypeEC2Instance, c.ResourceType())
	assert.False(t, c.Global())

	_, ok = ByName("not-a-service")
	assert.False(t, ok)
}
