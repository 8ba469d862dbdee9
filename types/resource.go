package types

import "time"

// NotAvailable is the sentinel rendered for any field the underlying
// API did not return. Reports never contain empty cells.
const NotAvailable = "N/A"

// RegionGlobal marks resources not scoped to any region.
const RegionGlobal = "global"

// Resource is one inventoried cloud resource as returned by a collector.
// Built fresh per collector invocation and immutable once returned.
type Resource struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Region    string            `json:"region"`
	Name      string            `json:"name"`
	ARN       string            `json:"arn"`
	Status    string            `json:"status"`
	Tags      map[string]string `json:"tags,omitempty"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
	Metadata  ResourceMetadata  `json:"metadata,omitempty"`
}

// Resource type labels. These are the values of the Type column in
// every report, so they are fixed here rather than derived per call.
const (
	TypeEC2Instance      = "EC2"
	TypeEBSVolume        = "EBS Volume"
	TypeEBSSnapshot      = "EBS Snapshot"
	TypeAMI              = "AMI"
	TypeElasticIP        = "Elastic IP"
	TypeVPC              = "VPC"
	TypeSubnet           = "Subnet"
	TypeSecurityGroup    = "Security Group"
	TypeNATGateway       = "NAT Gateway"
	TypeVPCEndpoint      = "VPC Endpoint"
	TypeAutoScalingGroup = "Auto Scaling Group"
	TypeLoadBalancer     = "ELB"
	TypeTargetGroup      = "Target Group"
	TypeRDSInstance      = "RDS"
	TypeRDSCluster       = "RDS Cluster"
	TypeRDSSnapshot      = "RDS Snapshot"
	TypeDocDBCluster     = "DocumentDB"
	TypeNeptuneCluster   = "Neptune"
	TypeDynamoDBTable    = "DynamoDB"
	TypeElastiCache      = "ElastiCache"
	TypeMemoryDB         = "MemoryDB"
	TypeRedshiftCluster  = "Redshift"
	TypeEKSCluster       = "EKS"
	TypeECSCluster       = "ECS"
	TypeECRRepository    = "ECR"
	TypeLambdaFunction   = "Lambda"
	TypeSQSQueue         = "SQS"
	TypeSNSTopic         = "SNS"
	TypeSecret           = "Secrets Manager"
	TypeKMSKey           = "KMS"
	TypeCloudWatchAlarm  = "CloudWatch Alarm"
	TypeLogGroup         = "CloudWatch Logs"
	TypeCloudTrail       = "CloudTrail"
	TypeCFNStack         = "CloudFormation"
	TypeAPIGateway       = "API Gateway"
	TypeEventRule        = "EventBridge Rule"
	TypeSSMParameter     = "SSM Parameter"
	TypeWebACL           = "WAF Web ACL"
	TypeGlueJob          = "Glue Job"
	TypeOpenSearchDomain = "OpenSearch"
	TypeS3Bucket         = "S3"
	TypeCloudFront       = "CloudFront"
	TypeHostedZone       = "Route53"
	TypeIAMUser          = "IAM User"
	TypeIAMRole          = "IAM Role"
	TypeSCP              = "Service Control Policy"
	TypeTagPolicy        = "Tag Policy"
	TypeConfigRule       = "Config Rule"
)

// IsGlobal reports whether the resource belongs to a region-independent
// service.
func (r *Resource) IsGlobal() bool {
	return r.Region == RegionGlobal
}

// DisplayName returns the resource name, falling back to the ID and then
// the N/A sentinel so downstream rendering never sees an empty value.
func (r *Resource) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return NotAvailable
}

// Identifier returns the ARN when present, otherwise the raw ID.
func (r *Resource) Identifier() string {
	if r.ARN != "" {
		return r.ARN
	}
	if r.ID != "" {
		return r.ID
	}
	return NotAvailable
}
