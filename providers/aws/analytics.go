package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/aws/aws-sdk-go-v2/service/redshift"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeRedshiftClusters lists all Redshift data-warehouse clusters
// in the region.
func (c *Connector) DescribeRedshiftClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.Redshift(region)
	paginator := redshift.NewDescribeClustersPaginator(client, &redshift.DescribeClustersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "redshift:DescribeClusters",
			func(ctx context.Context) (*redshift.DescribeClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.Clusters {
			var endpoint string
			var port int32
			if cluster.Endpoint != nil {
				endpoint = aws.ToString(cluster.Endpoint.Address)
				port = aws.ToInt32(cluster.Endpoint.Port)
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.ClusterIdentifier),
				Type:      types.TypeRedshiftCluster,
				Region:    region,
				Name:      aws.ToString(cluster.ClusterIdentifier),
				ARN:       c.arn("redshift", region, "cluster", aws.ToString(cluster.ClusterIdentifier)),
				Status:    aws.ToString(cluster.ClusterStatus),
				Tags:      convertTags(cluster.Tags),
				CreatedAt: toTime(cluster.ClusterCreateTime),
				Metadata: types.ResourceMetadata{
					State:              aws.ToString(cluster.ClusterStatus),
					InstanceClass:      aws.ToString(cluster.NodeType),
					NodeCount:          int(aws.ToInt32(cluster.NumberOfNodes)),
					Encrypted:          aws.ToBool(cluster.Encrypted),
					PubliclyAccessible: aws.ToBool(cluster.PubliclyAccessible),
					VpcID:              aws.ToString(cluster.VpcId),
					Endpoint:           endpoint,
					Port:               port,
				},
			})
		}
	}

	return resources, nil
}

// DescribeGlueJobs lists all Glue ETL jobs in the region.
func (c *Connector) DescribeGlueJobs(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.Glue(region)
	paginator := glue.NewGetJobsPaginator(client, &glue.GetJobsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "glue:GetJobs",
			func(ctx context.Context) (*glue.GetJobsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, job := range page.Jobs {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(job.Name),
				Type:      types.TypeGlueJob,
				Region:    region,
				Name:      aws.ToString(job.Name),
				ARN:       c.arn("glue", region, "job", aws.ToString(job.Name)),
				Status:    "ready",
				CreatedAt: toTime(job.CreatedOn),
				Metadata: types.ResourceMetadata{
					EngineVersion: aws.ToString(job.GlueVersion),
					LastActivity:  toTime(job.LastModifiedOn),
				},
			})
		}
	}

	return resources, nil
}

// DescribeOpenSearchDomains lists and describes search domains in the
// region. ListDomainNames is not paginated; a failed per-domain
// describe drops that domain only.
func (c *Connector) DescribeOpenSearchDomains(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.OpenSearch(region)

	list, err := awsretry.DoValue(ctx, c.retry, "opensearch:ListDomainNames",
		func(ctx context.Context) (*opensearch.ListDomainNamesOutput, error) {
			return client.ListDomainNames(ctx, &opensearch.ListDomainNamesInput{})
		})
	if err != nil {
		return nil, err
	}

	var resources []types.Resource
	for _, info := range list.DomainNames {
		name := aws.ToString(info.DomainName)

		out, err := awsretry.DoValue(ctx, c.retry, "opensearch:DescribeDomain",
			func(ctx context.Context) (*opensearch.DescribeDomainOutput, error) {
				return client.DescribeDomain(ctx, &opensearch.DescribeDomainInput{
					DomainName: aws.String(name),
				})
			})
		if err != nil || out.DomainStatus == nil {
			continue
		}

		domain := out.DomainStatus
		status := "active"
		if aws.ToBool(domain.Processing) {
			status = "processing"
		}

		encrypted := domain.EncryptionAtRestOptions != nil &&
			aws.ToBool(domain.EncryptionAtRestOptions.Enabled)

		var nodeCount int
		var instanceType string
		if domain.ClusterConfig != nil {
			nodeCount = int(aws.ToInt32(domain.ClusterConfig.InstanceCount))
			instanceType = string(domain.ClusterConfig.InstanceType)
		}

		// A domain without VPC options is reachable from the internet
		publicEndpoint := domain.VPCOptions == nil

		resources = append(resources, types.Resource{
			ID:     aws.ToString(domain.DomainId),
			Type:   types.TypeOpenSearchDomain,
			Region: region,
			Name:   name,
			ARN:    aws.ToString(domain.ARN),
			Status: status,
			Metadata: types.ResourceMetadata{
				State:              status,
				Engine:             "opensearch",
				EngineVersion:      aws.ToString(domain.EngineVersion),
				InstanceClass:      instanceType,
				NodeCount:          nodeCount,
				Encrypted:          encrypted,
				PubliclyAccessible: publicEndpoint,
				Endpoint:           aws.ToString(domain.Endpoint),
			},
		})
	}

	return resources, nil
}
