package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
)

func TestConvertTagsSliceOfStructs(t *testing.T) {
	tags := []ec2types.Tag{
		{Key: aws.String("Name"), Value: aws.String("web-1")},
		{Key: aws.String("team"), Value: aws.String("platform")},
	}

	got := convertTags(tags)
	assert.Equal(t, map[string]string{
		"Name": "web-1",
		"team": "platform",
	}, got)
}

func TestConvertTagsDifferentSDKTagType(t *testing.T) {
	tags := []elbv2types.Tag{
		{Key: aws.String("env"), Value: aws.String("prod")},
	}

	got := convertTags(tags)
	assert.Equal(t, map[string]string{"env": "prod"}, got)
}

func TestConvertTagsPlainMap(t *testing.T) {
	got := convertTags(map[string]string{"env": "dev"})
	assert.Equal(t, map[string]string{"env": "dev"}, got)
}

func TestConvertTagsMapOfPointers(t *testing.T) {
	got := convertTags(map[string]*string{"owner": aws.String("data-eng")})
	assert.Equal(t, map[string]string{"owner": "data-eng"}, got)
}

func TestConvertTagsEmpty(t *testing.T) {
	assert.Nil(t, convertTags(nil))
	assert.Nil(t, convertTags([]ec2types.Tag{}))
	assert.Nil(t, convertTags(map[string]string{}))
}

func TestConvertTagsNilValue(t *testing.T) {
	tags := []ec2types.Tag{
		{Key: aws.String("empty"), Value: nil},
	}

	got := convertTags(tags)
	assert.Equal(t, map[string]string{"empty": ""}, got)
}

func TestHasOpenIngress(t *testing.T) {
	open := []ec2types.IpPermission{
		{IpRanges: []ec2types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}}},
	}
	openV6 := []ec2types.IpPermission{
		{Ipv6Ranges: []ec2types.Ipv6Range{{CidrIpv6: aws.String("::/0")}}},
	}
	closed := []ec2types.IpPermission{
		{IpRanges: []ec2types.IpRange{{CidrIp: aws.String("10.0.0.0/8")}}},
	}

	assert.True(t, hasOpenIngress(open))
	assert.True(t, hasOpenIngress(openV6))
	assert.False(t, hasOpenIngress(closed))
	assert.False(t, hasOpenIngress(nil))
}
