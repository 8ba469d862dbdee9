package aws

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/cloudtally/cloudtally/awsclients"
	"github.com/cloudtally/cloudtally/awsretry"
)

// ListRegions returns the names of all regions enabled for the account,
// sorted for deterministic iteration order.
func (c *Connector) ListRegions(ctx context.Context) ([]string, error) {
	client := c.clients.EC2(awsclients.GlobalRegion)

	out, err := awsretry.DoValue(ctx, c.retry, "ec2:DescribeRegions",
		func(ctx context.Context) (*ec2.DescribeRegionsOutput, error) {
			return client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
		})
	if err != nil {
		return nil, err
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.ToString(r.RegionName))
	}
	sort.Strings(regions)

	return regions, nil
}
