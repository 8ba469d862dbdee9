package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeDBInstances lists all RDS database instances in the region.
func (c *Connector) DescribeDBInstances(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.RDS(region)
	paginator := rds.NewDescribeDBInstancesPaginator(client, &rds.DescribeDBInstancesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "rds:DescribeDBInstances",
			func(ctx context.Context) (*rds.DescribeDBInstancesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, instance := range page.DBInstances {
			resources = append(resources, buildDBInstanceResource(instance, region))
		}
	}

	return resources, nil
}

func buildDBInstanceResource(instance rdstypes.DBInstance, region string) types.Resource {
	var endpoint string
	var port int32
	if instance.Endpoint != nil {
		endpoint = aws.ToString(instance.Endpoint.Address)
		port = aws.ToInt32(instance.Endpoint.Port)
	}

	return types.Resource{
		ID:        aws.ToString(instance.DBInstanceIdentifier),
		Type:      types.TypeRDSInstance,
		Region:    region,
		Name:      aws.ToString(instance.DBInstanceIdentifier),
		ARN:       aws.ToString(instance.DBInstanceArn),
		Status:    aws.ToString(instance.DBInstanceStatus),
		Tags:      convertTags(instance.TagList),
		CreatedAt: toTime(instance.InstanceCreateTime),
		Metadata: types.ResourceMetadata{
			State:              aws.ToString(instance.DBInstanceStatus),
			Engine:             aws.ToString(instance.Engine),
			EngineVersion:      aws.ToString(instance.EngineVersion),
			InstanceClass:      aws.ToString(instance.DBInstanceClass),
			AllocatedStorage:   aws.ToInt32(instance.AllocatedStorage),
			Encrypted:          aws.ToBool(instance.StorageEncrypted),
			MultiAZ:            aws.ToBool(instance.MultiAZ),
			PubliclyAccessible: aws.ToBool(instance.PubliclyAccessible),
			Endpoint:           endpoint,
			Port:               port,
			AvailabilityZone:   aws.ToString(instance.AvailabilityZone),
			VpcID:              dbSubnetGroupVpc(instance.DBSubnetGroup),
		},
	}
}

func dbSubnetGroupVpc(group *rdstypes.DBSubnetGroup) string {
	if group == nil {
		return ""
	}
	return aws.ToString(group.VpcId)
}

// DescribeDBClusters lists all Aurora and multi-AZ DB clusters in the
// region.
func (c *Connector) DescribeDBClusters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.RDS(region)
	paginator := rds.NewDescribeDBClustersPaginator(client, &rds.DescribeDBClustersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "rds:DescribeDBClusters",
			func(ctx context.Context) (*rds.DescribeDBClustersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, cluster := range page.DBClusters {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(cluster.DBClusterIdentifier),
				Type:      types.TypeRDSCluster,
				Region:    region,
				Name:      aws.ToString(cluster.DBClusterIdentifier),
				ARN:       aws.ToString(cluster.DBClusterArn),
				Status:    aws.ToString(cluster.Status),
				Tags:      convertTags(cluster.TagList),
				CreatedAt: toTime(cluster.ClusterCreateTime),
				Metadata: types.ResourceMetadata{
					State:            aws.ToString(cluster.Status),
					Engine:           aws.ToString(cluster.Engine),
					EngineVersion:    aws.ToString(cluster.EngineVersion),
					Encrypted:        aws.ToBool(cluster.StorageEncrypted),
					MultiAZ:          aws.ToBool(cluster.MultiAZ),
					Endpoint:         aws.ToString(cluster.Endpoint),
					Port:             aws.ToInt32(cluster.Port),
					AllocatedStorage: aws.ToInt32(cluster.AllocatedStorage),
					NodeCount:        len(cluster.DBClusterMembers),
				},
			})
		}
	}

	return resources, nil
}

// DescribeDBSnapshots lists manual and automated RDS snapshots in the
// region.
func (c *Connector) DescribeDBSnapshots(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.RDS(region)
	paginator := rds.NewDescribeDBSnapshotsPaginator(client, &rds.DescribeDBSnapshotsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "rds:DescribeDBSnapshots",
			func(ctx context.Context) (*rds.DescribeDBSnapshotsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, snapshot := range page.DBSnapshots {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(snapshot.DBSnapshotIdentifier),
				Type:      types.TypeRDSSnapshot,
				Region:    region,
				Name:      aws.ToString(snapshot.DBSnapshotIdentifier),
				ARN:       aws.ToString(snapshot.DBSnapshotArn),
				Status:    aws.ToString(snapshot.Status),
				Tags:      convertTags(snapshot.TagList),
				CreatedAt: toTime(snapshot.SnapshotCreateTime),
				Metadata: types.ResourceMetadata{
					State:            aws.ToString(snapshot.Status),
					Engine:           aws.ToString(snapshot.Engine),
					EngineVersion:    aws.ToString(snapshot.EngineVersion),
					AllocatedStorage: aws.ToInt32(snapshot.AllocatedStorage),
					Encrypted:        aws.ToBool(snapshot.Encrypted),
					AttachedTo:       aws.ToString(snapshot.DBInstanceIdentifier),
				},
			})
		}
	}

	return resources, nil
}
