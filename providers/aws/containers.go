package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeEKSClusters lists and describes all EKS clusters in the
// region. A failed per-cluster describe drops that cluster only.
func (c *Connector) DescribeEKSClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EKS(region)
	paginator := eks.NewListClustersPaginator(client, &eks.ListClustersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "eks:ListClusters",
			func(ctx context.Context) (*eks.ListClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, clusterName := range page.Clusters {
			out, err := awsretry.DoValue(ctx, c.retry, "eks:DescribeCluster",
				func(ctx context.Context) (*eks.DescribeClusterOutput, error) {
					return client.DescribeCluster(ctx, &eks.DescribeClusterInput{
						Name: aws.String(clusterName),
					})
				})
			if err != nil || out.Cluster == nil {
				continue
			}

			cluster := out.Cluster
			var vpcID string
			var publicEndpoint bool
			if cluster.ResourcesVpcConfig != nil {
				vpcID = aws.ToString(cluster.ResourcesVpcConfig.VpcId)
				publicEndpoint = cluster.ResourcesVpcConfig.EndpointPublicAccess
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.Name),
				Type:      types.TypeEKSCluster,
				Region:    region,
				Name:      aws.ToString(cluster.Name),
				ARN:       aws.ToString(cluster.Arn),
				Status:    string(cluster.Status),
				Tags:      convertTags(cluster.Tags),
				CreatedAt: toTime(cluster.CreatedAt),
				Metadata: types.ResourceMetadata{
					State:              string(cluster.Status),
					Engine:             "kubernetes",
					EngineVersion:      aws.ToString(cluster.Version),
					VpcID:              vpcID,
					PubliclyAccessible: publicEndpoint,
					Endpoint:           aws.ToString(cluster.Endpoint),
				},
			})
		}
	}

	return resources, nil
}

// DescribeECSClusters lists ECS clusters and describes them in batches
// of up to 100, the DescribeClusters limit.
func (c *Connector) DescribeECSClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.ECS(region)
	paginator := ecs.NewListClustersPaginator(client, &ecs.ListClustersInput{})

	var arns []string
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ecs:ListClusters",
			func(ctx context.Context) (*ecs.ListClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.ClusterArns...)
	}

	var resources []types.Resource
	const batchSize = 100
	for start := 0; start < len(arns); start += batchSize {
		end := start + batchSize
		if end > len(arns) {
			end = len(arns)
		}

		out, err := awsretry.DoValue(ctx, c.retry, "ecs:DescribeClusters",
			func(ctx context.Context) (*ecs.DescribeClustersOutput, error) {
				return client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
					Clusters: arns[start:end],
				})
			})
		if err != nil {
			continue
		}

		for _, cluster := range out.Clusters {
			resources = append(resources, types.Resource{
				ID:     aws.ToString(cluster.ClusterName),
				Type:   types.TypeECSCluster,
				Region: region,
				Name:   aws.ToString(cluster.ClusterName),
				ARN:    aws.ToString(cluster.ClusterArn),
				Status: aws.ToString(cluster.Status),
				Tags:   convertTags(cluster.Tags),
				Metadata: types.ResourceMetadata{
					State:     aws.ToString(cluster.Status),
					NodeCount: int(cluster.RegisteredContainerInstancesCount),
					ItemCount: int64(cluster.ActiveServicesCount),
				},
			})
		}
	}

	return resources, nil
}

// DescribeECRRepositories lists all container registries in the region.
func (c *Connector) DescribeECRRepositories(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.ECR(region)
	paginator := ecr.NewDescribeRepositoriesPaginator(client, &ecr.DescribeRepositoriesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ecr:DescribeRepositories",
			func(ctx context.Context) (*ecr.DescribeRepositoriesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, repo := range page.Repositories {
			encrypted := repo.EncryptionConfiguration != nil &&
				repo.EncryptionConfiguration.EncryptionType != ""

			resources = append(resources, types.Resource{
				ID:        aws.ToString(repo.RepositoryName),
				Type:      types.TypeECRRepository,
				Region:    region,
				Name:      aws.ToString(repo.RepositoryName),
				ARN:       aws.ToString(repo.RepositoryArn),
				Status:    "available",
				CreatedAt: toTime(repo.CreatedAt),
				Metadata: types.ResourceMetadata{
					RepositoryURI: aws.ToString(repo.RepositoryUri),
					Encrypted:     encrypted,
				},
			})
		}
	}

	return resources, nil
}
