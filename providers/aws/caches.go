package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/memorydb"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeCacheClusters lists all ElastiCache clusters in the region.
func (c *Connector) DescribeCacheClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.ElastiCache(region)
	paginator := elasticache.NewDescribeCacheClustersPaginator(client, &elasticache.DescribeCacheClustersInput{
		ShowCacheNodeInfo: aws.Bool(true),
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "elasticache:DescribeCacheClusters",
			func(ctx context.Context) (*elasticache.DescribeCacheClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.CacheClusters {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.CacheClusterId),
				Type:      types.TypeElastiCache,
				Region:    region,
				Name:      aws.ToString(cluster.CacheClusterId),
				ARN:       aws.ToString(cluster.ARN),
				Status:    aws.ToString(cluster.CacheClusterStatus),
				CreatedAt: toTime(cluster.CacheClusterCreateTime),
				Metadata: types.ResourceMetadata{
					State:         aws.ToString(cluster.CacheClusterStatus),
					Engine:        aws.ToString(cluster.Engine),
					EngineVersion: aws.ToString(cluster.EngineVersion),
					InstanceClass: aws.ToString(cluster.CacheNodeType),
					NodeCount:     int(aws.ToInt32(cluster.NumCacheNodes)),
					Encrypted:     aws.ToBool(cluster.AtRestEncryptionEnabled),
					AvailabilityZone: aws.ToString(cluster.PreferredAvailabilityZone),
				},
			})
		}
	}

	return resources, nil
}

// DescribeMemoryDBClusters lists all MemoryDB clusters in the region.
func (c *Connector) DescribeMemoryDBClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.MemoryDB(region)
	paginator := memorydb.NewDescribeClustersPaginator(client, &memorydb.DescribeClustersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "memorydb:DescribeClusters",
			func(ctx context.Context) (*memorydb.DescribeClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.Clusters {
			nodes := 0
			for _, shard := range cluster.Shards {
				nodes += len(shard.Nodes)
			}

			resources = append(resources, types.Resource{
				ID:     aws.ToString(cluster.Name),
				Type:   types.TypeMemoryDB,
				Region: region,
				Name:   aws.ToString(cluster.Name),
				ARN:    aws.ToString(cluster.ARN),
				Status: aws.ToString(cluster.Status),
				// MemoryDB does not report a creation time
				Metadata: types.ResourceMetadata{
					State:         aws.ToString(cluster.Status),
					Engine:        "redis",
					EngineVersion: aws.ToString(cluster.EngineVersion),
					InstanceClass: aws.ToString(cluster.NodeType),
					NodeCount:     nodes,
					Encrypted:     aws.ToBool(cluster.TLSEnabled),
				},
			})
		}
	}

	return resources, nil
}
