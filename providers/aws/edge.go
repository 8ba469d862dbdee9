package aws

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeDistributions lists all CloudFront distributions in the account.
func (c *Connector) DescribeDistributions(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.CloudFront()
	paginator := cloudfront.NewListDistributionsPaginator(client, &cloudfront.ListDistributionsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "cloudfront:ListDistributions",
			func(ctx context.Context) (*cloudfront.ListDistributionsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}
		if page.DistributionList == nil {
			continue
		}

		for _, dist := range page.DistributionList.Items {
			name := aws.ToString(dist.DomainName)
			if dist.Aliases != nil && len(dist.Aliases.Items) > 0 {
				name = dist.Aliases.Items[0]
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(dist.Id),
				Type:      types.TypeCloudFront,
				Region:    types.RegionGlobal,
				Name:      name,
				ARN:       aws.ToString(dist.ARN),
				Status:    aws.ToString(dist.Status),
				CreatedAt: toTime(dist.LastModifiedTime),
				Metadata: types.ResourceMetadata{
					DNSName:            aws.ToString(dist.DomainName),
					State:              aws.ToString(dist.Status),
					PubliclyAccessible: aws.ToBool(dist.Enabled),
				},
			})
		}
	}

	return resources, nil
}

// DescribeHostedZones lists all Route 53 hosted zones in the account.
func (c *Connector) DescribeHostedZones(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.Route53()
	paginator := route53.NewListHostedZonesPaginator(client, &route53.ListHostedZonesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "route53:ListHostedZones",
			func(ctx context.Context) (*route53.ListHostedZonesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, zone := range page.HostedZones {
			// IDs come back as "/hostedzone/Z123"; keep the bare ID.
			id := strings.TrimPrefix(aws.ToString(zone.Id), "/hostedzone/")
			private := zone.Config != nil && zone.Config.PrivateZone

			resources = append(resources, types.Resource{
				ID:     id,
				Type:   types.TypeHostedZone,
				Region: types.RegionGlobal,
				Name:   strings.TrimSuffix(aws.ToString(zone.Name), "."),
				ARN:    "arn:aws:route53:::hostedzone/" + id,
				Status: "available",
				Metadata: types.ResourceMetadata{
					ZoneID:             id,
					RecordCount:        aws.ToInt64(zone.ResourceRecordSetCount),
					PubliclyAccessible: !private,
				},
			})
		}
	}

	return resources, nil
}
