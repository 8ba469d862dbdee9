package awsclients

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestCacheReturnsSameClientForSameKey(t *testing.T) {
	c := NewCache(aws.Config{Region: "us-east-1"})

	first := c.EC2("us-east-1")
	second := c.EC2("us-east-1")

	assert.Same(t, first, second)
}

func TestCacheSeparatesRegions(t *testing.T) {
	c := NewCache(aws.Config{})

	east := c.EC2("us-east-1")
	west := c.EC2("us-west-2")

	assert.NotSame(t, east, west)
}

func TestClearAllInvalidatesClients(t *testing.T) {
	c := NewCache(aws.Config{})

	before := c.RDS("eu-west-1")
	c.ClearAll()
	after := c.RDS("eu-west-1")

	assert.NotSame(t, before, after)
}

func TestSetConfigInvalidatesClients(t *testing.T) {
	c := NewCache(aws.Config{})

	before := c.S3()
	c.SetConfig(aws.Config{Region: "eu-central-1"})
	after := c.S3()

	assert.NotSame(t, before, after)
}

func TestGlobalServicesShareOneClient(t *testing.T) {
	c := NewCache(aws.Config{})

	assert.Same(t, c.IAM(), c.IAM())
	assert.Same(t, c.Route53(), c.Route53())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "ec2/us-east-1", cacheKey("ec2", "us-east-1"))
}
