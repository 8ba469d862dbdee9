package aws

import (
	"context"

	"github.com/cloudtally/cloudtally/types"
)

// Collector lists one resource kind from one service.
type Collector interface {
	// Name is the short service label used in error messages and logs.
	Name() string
	// ResourceType is the report Type label the collector produces.
	ResourceType() string
	// Global reports whether the resource kind is region-independent.
	// Global collectors run at most once per run.
	Global() bool
	// Collect lists and describes the resource kind. For global
	// collectors the region argument is ignored.
	Collect(ctx context.Context, c *Connector, region string) ([]types.Resource, error)
}

// collectFunc adapts a Connector method expression into a Collector.
type collectFunc struct {
	name     string
	resType  string
	isGlobal bool
	fn       func(c *Connector, ctx context.Context, region string) ([]types.Resource, error)
}

func (cf collectFunc) Name() string         { return cf.name }
func (cf collectFunc) ResourceType() string { return cf.resType }
func (cf collectFunc) Global() bool         { return cf.isGlobal }
func (cf collectFunc) Collect(ctx context.Context, c *Connector, region string) ([]types.Resource, error) {
	return cf.fn(c, ctx, region)
}

func regional(name, resType string, fn func(c *Connector, ctx context.Context, region string) ([]types.Resource, error)) Collector {
	return collectFunc{name: name, resType: resType, fn: fn}
}

func global(name, resType string, fn func(c *Connector, ctx context.Context, region string) ([]types.Resource, error)) Collector {
	return collectFunc{name: name, resType: resType, isGlobal: true, fn: fn}
}

// Registry returns every collector in the fixed sequence the
// consolidation engine drives them. Regional collectors first, then
// the global ones. Order is part of the output contract: rows appear
// in collection order.
func Registry() []Collector {
	return []Collector{
		// Compute and networking
		regional("ec2", types.TypeEC2Instance, (*Connector).DescribeInstances),
		regional("ebs", types.TypeEBSVolume, (*Connector).DescribeVolumes),
		regional("ebs-snapshot", types.TypeEBSSnapshot, (*Connector).DescribeSnapshots),
		regional("ami", types.TypeAMI, (*Connector).DescribeImages),
		regional("eip", types.TypeElasticIP, (*Connector).DescribeElasticIPs),
		regional("vpc", types.TypeVPC, (*Connector).DescribeVPCs),
		regional("subnet", types.TypeSubnet, (*Connector).DescribeSubnets),
		regional("sg", types.TypeSecurityGroup, (*Connector).DescribeSecurityGroups),
		regional("natgw", types.TypeNATGateway, (*Connector).DescribeNATGateways),
		regional("vpce", types.TypeVPCEndpoint, (*Connector).DescribeVPCEndpoints),
		regional("asg", types.TypeAutoScalingGroup, (*Connector).DescribeAutoScalingGroups),
		regional("elb", types.TypeLoadBalancer, (*Connector).DescribeLoadBalancers),
		regional("targetgroup", types.TypeTargetGroup, (*Connector).DescribeTargetGroups),

		// Databases and caches
		regional("rds", types.TypeRDSInstance, (*Connector).DescribeDBInstances),
		regional("rds-cluster", types.TypeRDSCluster, (*Connector).DescribeDBClusters),
		regional("rds-snapshot", types.TypeRDSSnapshot, (*Connector).DescribeDBSnapshots),
		regional("docdb", types.TypeDocDBCluster, (*Connector).DescribeDocDBClusters),
		regional("neptune", types.TypeNeptuneCluster, (*Connector).DescribeNeptuneClusters),
		regional("dynamodb", types.TypeDynamoDBTable, (*Connector).DescribeDynamoDBTables),
		regional("elasticache", types.TypeElastiCache, (*Connector).DescribeCacheClusters),
		regional("memorydb", types.TypeMemoryDB, (*Connector).DescribeMemoryDBClusters),
		regional("redshift", types.TypeRedshiftCluster, (*Connector).DescribeRedshiftClusters),

		// Containers and serverless
		regional("eks", types.TypeEKSCluster, (*Connector).DescribeEKSClusters),
		regional("ecs", types.TypeECSCluster, (*Connector).DescribeECSClusters),
		regional("ecr", types.TypeECRRepository, (*Connector).DescribeECRRepositories),
		regional("lambda", types.TypeLambdaFunction, (*Connector).DescribeLambdaFunctions),

		// Messaging
		regional("sqs", types.TypeSQSQueue, (*Connector).DescribeSQSQueues),
		regional("sns", types.TypeSNSTopic, (*Connector).DescribeSNSTopics),
		regional("events", types.TypeEventRule, (*Connector).DescribeEventRules),

		// Security
		regional("secrets", types.TypeSecret, (*Connector).DescribeSecrets),
		regional("kms", types.TypeKMSKey, (*Connector).DescribeKMSKeys),
		regional("wafv2", types.TypeWebACL, (*Connector).DescribeWebACLs),

		// Monitoring and governance plumbing
		regional("cloudwatch", types.TypeCloudWatchAlarm, (*Connector).DescribeAlarms),
		regional("logs", types.TypeLogGroup, (*Connector).DescribeLogGroups),
		regional("cloudtrail", types.TypeCloudTrail, (*Connector).DescribeTrails),
		regional("cloudformation", types.TypeCFNStack, (*Connector).DescribeStacks),
		regional("apigateway", types.TypeAPIGateway, (*Connector).DescribeRestAPIs),
		regional("ssm", types.TypeSSMParameter, (*Connector).DescribeParameters),

		// Analytics
		regional("glue", types.TypeGlueJob, (*Connector).DescribeGlueJobs),
		regional("opensearch", types.TypeOpenSearchDomain, (*Connector).DescribeOpenSearchDomains),

		// Global services, collected once per run
		global("s3", types.TypeS3Bucket, (*Connector).DescribeBuckets),
		global("cloudfront", types.TypeCloudFront, (*Connector).DescribeDistributions),
		global("route53", types.TypeHostedZone, (*Connector).DescribeHostedZones),
		global("iam-user", types.TypeIAMUser, (*Connector).DescribeIAMUsers),
		global("iam-role", types.TypeIAMRole, (*Connector).DescribeIAMRoles),
		global("org-scp", types.TypeSCP, (*Connector).DescribeServiceControlPolicies),
		global("org-tagpolicy", types.TypeTagPolicy, (*Connector).DescribeTagPolicies),
		global("config", types.TypeConfigRule, (*Connector).DescribeConfigRules),
	}
}

// RegionalCollectors returns only the region-scoped collectors.
func RegionalCollectors() []Collector {
	return filterCollectors(false)
}

// GlobalCollectors returns only the region-independent collectors.
func GlobalCollectors() []Collector {
	return filterCollectors(true)
}

func filterCollectors(wantGlobal bool) []Collector {
	var out []Collector
	for _, c := range Registry() {
		if c.Global() == wantGlobal {
			out = append(out, c)
		}
	}
	return out
}

// ByName returns the collector with the given short name, for the
// per-service export path.
func ByName(name string) (Collector, bool) {
	for _, c := range Registry() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
