package aws

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeSQSQueues lists all SQS queues in the region. Queue
// attributes and tags are fetched per queue best-effort; an attribute
// failure drops that queue, a tag failure keeps it without tags.
func (c *Connector) DescribeSQSQueues(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.SQS(region)
	paginator := sqs.NewListQueuesPaginator(client, &sqs.ListQueuesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "sqs:ListQueues",
			func(ctx context.Context) (*sqs.ListQueuesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, queueURL := range page.QueueUrls {
			resource, ok := c.buildSQSResource(ctx, client, queueURL, region)
			if !ok {
				continue
			}
			resources = append(resources, resource)
		}
	}

	return resources, nil
}

func (c *Connector) buildSQSResource(ctx context.Context, client *sqs.Client, queueURL, region string) (types.Resource, bool) {
	attrs, err := awsretry.DoValue(ctx, c.retry, "sqs:GetQueueAttributes",
		func(ctx context.Context) (*sqs.GetQueueAttributesOutput, error) {
			return client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
				QueueUrl: aws.String(queueURL),
				AttributeNames: []sqstypes.QueueAttributeName{
					sqstypes.QueueAttributeNameQueueArn,
					sqstypes.QueueAttributeNameApproximateNumberOfMessages,
					sqstypes.QueueAttributeNameCreatedTimestamp,
					sqstypes.QueueAttributeNameLastModifiedTimestamp,
					sqstypes.QueueAttributeNameKmsMasterKeyId,
					sqstypes.QueueAttributeNameSqsManagedSseEnabled,
				},
			})
		})
	if err != nil {
		return types.Resource{}, false
	}

	queueName := queueURL
	if idx := strings.LastIndex(queueURL, "/"); idx >= 0 {
		queueName = queueURL[idx+1:]
	}

	encrypted := attrs.Attributes[string(sqstypes.QueueAttributeNameKmsMasterKeyId)] != "" ||
		attrs.Attributes[string(sqstypes.QueueAttributeNameSqsManagedSseEnabled)] == "true"

	messages, _ := strconv.ParseInt(attrs.Attributes[string(sqstypes.QueueAttributeNameApproximateNumberOfMessages)], 10, 64)

	var created time.Time
	if raw := attrs.Attributes[string(sqstypes.QueueAttributeNameCreatedTimestamp)]; raw != "" {
		if epoch, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			created = time.Unix(epoch, 0).UTC()
		}
	}

	return types.Resource{
		ID:        queueName,
		Type:      types.TypeSQSQueue,
		Region:    region,
		Name:      queueName,
		ARN:       attrs.Attributes[string(sqstypes.QueueAttributeNameQueueArn)],
		Status:    "available",
		Tags:      c.sqsTags(ctx, client, queueURL),
		CreatedAt: created,
		Metadata: types.ResourceMetadata{
			ItemCount: messages,
			Encrypted: encrypted,
			Endpoint:  queueURL,
		},
	}, true
}

func (c *Connector) sqsTags(ctx context.Context, client *sqs.Client, queueURL string) map[string]string {
	out, err := awsretry.DoValue(ctx, c.retry, "sqs:ListQueueTags",
		func(ctx context.Context) (*sqs.ListQueueTagsOutput, error) {
			return client.ListQueueTags(ctx, &sqs.ListQueueTagsInput{
				QueueUrl: aws.String(queueURL),
			})
		})
	if err != nil {
		return nil
	}
	return convertTags(out.Tags)
}

// DescribeSNSTopics lists all SNS topics in the region.
func (c *Connector) DescribeSNSTopics(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.SNS(region)
	paginator := sns.NewListTopicsPaginator(client, &sns.ListTopicsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "sns:ListTopics",
			func(ctx context.Context) (*sns.ListTopicsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, topic := range page.Topics {
			arn := aws.ToString(topic.TopicArn)
			name := arn
			if idx := strings.LastIndex(arn, ":"); idx >= 0 {
				name = arn[idx+1:]
			}

			resources = append(resources, types.Resource{
				ID:     arn,
				Type:   types.TypeSNSTopic,
				Region: region,
				Name:   name,
				ARN:    arn,
				Status: "available",
			})
		}
	}

	return resources, nil
}

// DescribeEventRules lists all EventBridge rules on the default bus.
// ListRules has no paginator, so the token loop is explicit.
func (c *Connector) DescribeEventRules(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.EventBridge(region)

	var resources []types.Resource
	var nextToken *string
	for {
		out, err := awsretry.DoValue(ctx, c.retry, "events:ListRules",
			func(ctx context.Context) (*eventbridge.ListRulesOutput, error) {
				return client.ListRules(ctx, &eventbridge.ListRulesInput{
					NextToken: nextToken,
				})
			})
		if err != nil {
			return nil, err
		}

		for _, rule := range out.Rules {
			resources = append(resources, types.Resource{
				ID:     aws.ToString(rule.Name),
				Type:   types.TypeEventRule,
				Region: region,
				Name:   aws.ToString(rule.Name),
				ARN:    aws.ToString(rule.Arn),
				Status: string(rule.State),
				Metadata: types.ResourceMetadata{
					State: string(rule.State),
				},
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return resources, nil
}
