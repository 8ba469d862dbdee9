package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	docdbtypes "github.com/aws/aws-sdk-go-v2/service/docdb/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/neptune"
	neptunetypes "github.com/aws/aws-sdk-go-v2/service/neptune/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeDynamoDBTables lists all DynamoDB tables and describes each
// one. A failed describe drops that table only, the rest survive.
func (c *Connector) DescribeDynamoDBTables(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.DynamoDB(region)
	paginator := dynamodb.NewListTablesPaginator(client, &dynamodb.ListTablesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "dynamodb:ListTables",
			func(ctx context.Context) (*dynamodb.ListTablesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, tableName := range page.TableNames {
			out, err := awsretry.DoValue(ctx, c.retry, "dynamodb:DescribeTable",
				func(ctx context.Context) (*dynamodb.DescribeTableOutput, error) {
					return client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
						TableName: aws.String(tableName),
					})
				})
			if err != nil || out.Table == nil {
				continue
			}

			resources = append(resources, c.buildDynamoDBResource(ctx, client, *out.Table, region))
		}
	}

	return resources, nil
}

func (c *Connector) buildDynamoDBResource(ctx context.Context, client *dynamodb.Client, table ddbtypes.TableDescription, region string) types.Resource {
	encrypted := table.SSEDescription != nil &&
		table.SSEDescription.Status == ddbtypes.SSEStatusEnabled

	return types.Resource{
		ID:        aws.ToString(table.TableName),
		Type:      types.TypeDynamoDBTable,
		Region:    region,
		Name:      aws.ToString(table.TableName),
		ARN:       aws.ToString(table.TableArn),
		Status:    string(table.TableStatus),
		Tags:      c.dynamoDBTags(ctx, client, table.TableArn),
		CreatedAt: toTime(table.CreationDateTime),
		Metadata: types.ResourceMetadata{
			State:     string(table.TableStatus),
			ItemCount: aws.ToInt64(table.ItemCount),
			SizeBytes: aws.ToInt64(table.TableSizeBytes),
			Encrypted: encrypted,
		},
	}
}

// dynamoDBTags is best-effort: a tag fetch failure returns nil.
func (c *Connector) dynamoDBTags(ctx context.Context, client *dynamodb.Client, tableARN *string) map[string]string {
	out, err := awsretry.DoValue(ctx, c.retry, "dynamodb:ListTagsOfResource",
		func(ctx context.Context) (*dynamodb.ListTagsOfResourceOutput, error) {
			return client.ListTagsOfResource(ctx, &dynamodb.ListTagsOfResourceInput{
				ResourceArn: tableARN,
			})
		})
	if err != nil {
		return nil
	}
	return convertTags(out.Tags)
}

// DescribeDocDBClusters lists DocumentDB clusters in the region. The
// DocDB API shares its backend with RDS, so the engine filter keeps
// plain RDS clusters out of the result.
func (c *Connector) DescribeDocDBClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.DocDB(region)
	paginator := docdb.NewDescribeDBClustersPaginator(client, &docdb.DescribeDBClustersInput{
		Filters: []docdbtypes.Filter{
			{Name: aws.String("engine"), Values: []string{"docdb"}},
		},
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "docdb:DescribeDBClusters",
			func(ctx context.Context) (*docdb.DescribeDBClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.DBClusters {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.DBClusterIdentifier),
				Type:      types.TypeDocDBCluster,
				Region:    region,
				Name:      aws.ToString(cluster.DBClusterIdentifier),
				ARN:       aws.ToString(cluster.DBClusterArn),
				Status:    aws.ToString(cluster.Status),
				CreatedAt: toTime(cluster.ClusterCreateTime),
				Metadata: types.ResourceMetadata{
					State:         aws.ToString(cluster.Status),
					Engine:        aws.ToString(cluster.Engine),
					EngineVersion: aws.ToString(cluster.EngineVersion),
					Encrypted:     aws.ToBool(cluster.StorageEncrypted),
					Endpoint:      aws.ToString(cluster.Endpoint),
					Port:          aws.ToInt32(cluster.Port),
					NodeCount:     len(cluster.DBClusterMembers),
				},
			})
		}
	}

	return resources, nil
}

// DescribeNeptuneClusters lists Neptune graph clusters in the region.
func (c *Connector) DescribeNeptuneClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.Neptune(region)
	paginator := neptune.NewDescribeDBClustersPaginator(client, &neptune.DescribeDBClustersInput{
		Filters: []neptunetypes.Filter{
			{Name: aws.String("engine"), Values: []string{"neptune"}},
		},
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "neptune:DescribeDBClusters",
			func(ctx context.Context) (*neptune.DescribeDBClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.DBClusters {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.DBClusterIdentifier),
				Type:      types.TypeNeptuneCluster,
				Region:    region,
				Name:      aws.ToString(cluster.DBClusterIdentifier),
				ARN:       aws.ToString(cluster.DBClusterArn),
				Status:    aws.ToString(cluster.Status),
				CreatedAt: toTime(cluster.ClusterCreateTime),
				Metadata: types.ResourceMetadata{
					State:         aws.ToString(cluster.Status),
					Engine:        aws.ToString(cluster.Engine),
					EngineVersion: aws.ToString(cluster.EngineVersion),
					Encrypted:     aws.ToBool(cluster.StorageEncrypted),
					Endpoint:      aws.ToString(cluster.Endpoint),
					Port:          aws.ToInt32(cluster.Port),
					NodeCount:     len(cluster.DBClusterMembers),
				},
			})
		}
	}

	return resources, nil
}
