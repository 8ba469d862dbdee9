package awsclients

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/memorydb"
	"github.com/aws/aws-sdk-go-v2/service/neptune"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/wafv2"
)

// Regional services.

func (c *Cache) EC2(region string) *ec2.Client {
	return get(c, "ec2", region, func(cfg aws.Config) *ec2.Client { return ec2.NewFromConfig(cfg) })
}

func (c *Cache) AutoScaling(region string) *autoscaling.Client {
	return get(c, "autoscaling", region, func(cfg aws.Config) *autoscaling.Client { return autoscaling.NewFromConfig(cfg) })
}

func (c *Cache) ELBV2(region string) *elasticloadbalancingv2.Client {
	return get(c, "elbv2", region, func(cfg aws.Config) *elasticloadbalancingv2.Client {
		return elasticloadbalancingv2.NewFromConfig(cfg)
	})
}

func (c *Cache) RDS(region string) *rds.Client {
	return get(c, "rds", region, func(cfg aws.Config) *rds.Client { return rds.NewFromConfig(cfg) })
}

func (c *Cache) DocDB(region string) *docdb.Client {
	return get(c, "docdb", region, func(cfg aws.Config) *docdb.Client { return docdb.NewFromConfig(cfg) })
}

func (c *Cache) Neptune(region string) *neptune.Client {
	return get(c, "neptune", region, func(cfg aws.Config) *neptune.Client { return neptune.NewFromConfig(cfg) })
}

func (c *Cache) DynamoDB(region string) *dynamodb.Client {
	return get(c, "dynamodb", region, func(cfg aws.Config) *dynamodb.Client { return dynamodb.NewFromConfig(cfg) })
}

func (c *Cache) ElastiCache(region string) *elasticache.Client {
	return get(c, "elasticache", region, func(cfg aws.Config) *elasticache.Client { return elasticache.NewFromConfig(cfg) })
}

func (c *Cache) MemoryDB(region string) *memorydb.Client {
	return get(c, "memorydb", region, func(cfg aws.Config) *memorydb.Client { return memorydb.NewFromConfig(cfg) })
}

func (c *Cache) Redshift(region string) *redshift.Client {
	return get(c, "redshift", region, func(cfg aws.Config) *redshift.Client { return redshift.NewFromConfig(cfg) })
}

func (c *Cache) EKS(region string) *eks.Client {
	return get(c, "eks", region, func(cfg aws.Config) *eks.Client { return eks.NewFromConfig(cfg) })
}

func (c *Cache) ECS(region string) *ecs.Client {
	return get(c, "ecs", region, func(cfg aws.Config) *ecs.Client { return ecs.NewFromConfig(cfg) })
}

func (c *Cache) ECR(region string) *ecr.Client {
	return get(c, "ecr", region, func(cfg aws.Config) *ecr.Client { return ecr.NewFromConfig(cfg) })
}

func (c *Cache) Lambda(region string) *lambda.Client {
	return get(c, "lambda", region, func(cfg aws.Config) *lambda.Client { return lambda.NewFromConfig(cfg) })
}

func (c *Cache) SQS(region string) *sqs.Client {
	return get(c, "sqs", region, func(cfg aws.Config) *sqs.Client { return sqs.NewFromConfig(cfg) })
}

func (c *Cache) SNS(region string) *sns.Client {
	return get(c, "sns", region, func(cfg aws.Config) *sns.Client { return sns.NewFromConfig(cfg) })
}

func (c *Cache) SecretsManager(region string) *secretsmanager.Client {
	return get(c, "secretsmanager", region, func(cfg aws.Config) *secretsmanager.Client {
		return secretsmanager.NewFromConfig(cfg)
	})
}

func (c *Cache) KMS(region string) *kms.Client {
	return get(c, "kms", region, func(cfg aws.Config) *kms.Client { return kms.NewFromConfig(cfg) })
}

func (c *Cache) CloudWatch(region string) *cloudwatch.Client {
	return get(c, "cloudwatch", region, func(cfg aws.Config) *cloudwatch.Client { return cloudwatch.NewFromConfig(cfg) })
}

func (c *Cache) CloudWatchLogs(region string) *cloudwatchlogs.Client {
	return get(c, "logs", region, func(cfg aws.Config) *cloudwatchlogs.Client { return cloudwatchlogs.NewFromConfig(cfg) })
}

func (c *Cache) CloudTrail(region string) *cloudtrail.Client {
	return get(c, "cloudtrail", region, func(cfg aws.Config) *cloudtrail.Client { return cloudtrail.NewFromConfig(cfg) })
}

func (c *Cache) CloudFormation(region string) *cloudformation.Client {
	return get(c, "cloudformation", region, func(cfg aws.Config) *cloudformation.Client {
		return cloudformation.NewFromConfig(cfg)
	})
}

func (c *Cache) APIGateway(region string) *apigateway.Client {
	return get(c, "apigateway", region, func(cfg aws.Config) *apigateway.Client { return apigateway.NewFromConfig(cfg) })
}

func (c *Cache) EventBridge(region string) *eventbridge.Client {
	return get(c, "events", region, func(cfg aws.Config) *eventbridge.Client { return eventbridge.NewFromConfig(cfg) })
}

func (c *Cache) SSM(region string) *ssm.Client {
	return get(c, "ssm", region, func(cfg aws.Config) *ssm.Client { return ssm.NewFromConfig(cfg) })
}

func (c *Cache) WAFV2(region string) *wafv2.Client {
	return get(c, "wafv2", region, func(cfg aws.Config) *wafv2.Client { return wafv2.NewFromConfig(cfg) })
}

func (c *Cache) Glue(region string) *glue.Client {
	return get(c, "glue", region, func(cfg aws.Config) *glue.Client { return glue.NewFromConfig(cfg) })
}

func (c *Cache) OpenSearch(region string) *opensearch.Client {
	return get(c, "opensearch", region, func(cfg aws.Config) *opensearch.Client { return opensearch.NewFromConfig(cfg) })
}

// Global services, pinned to the canonical entry region.

func (c *Cache) S3() *s3.Client {
	return get(c, "s3", "", func(cfg aws.Config) *s3.Client { return s3.NewFromConfig(cfg) })
}

func (c *Cache) CloudFront() *cloudfront.Client {
	return get(c, "cloudfront", "", func(cfg aws.Config) *cloudfront.Client { return cloudfront.NewFromConfig(cfg) })
}

func (c *Cache) Route53() *route53.Client {
	return get(c, "route53", "", func(cfg aws.Config) *route53.Client { return route53.NewFromConfig(cfg) })
}

func (c *Cache) IAM() *iam.Client {
	return get(c, "iam", "", func(cfg aws.Config) *iam.Client { return iam.NewFromConfig(cfg) })
}

func (c *Cache) Organizations() *organizations.Client {
	return get(c, "organizations", "", func(cfg aws.Config) *organizations.Client {
		return organizations.NewFromConfig(cfg)
	})
}

func (c *Cache) ConfigService(region string) *configservice.Client {
	return get(c, "config", region, func(cfg aws.Config) *configservice.Client { return configservice.NewFromConfig(cfg) })
}

func (c *Cache) STS() *sts.Client {
	return get(c, "sts", "", func(cfg aws.Config) *sts.Client { return sts.NewFromConfig(cfg) })
}
