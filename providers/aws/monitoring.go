package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeAlarms lists all CloudWatch metric alarms in the region.
func (c *Connector) DescribeAlarms(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.CloudWatch(region)
	paginator := cloudwatch.NewDescribeAlarmsPaginator(client, &cloudwatch.DescribeAlarmsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "cloudwatch:DescribeAlarms",
			func(ctx context.Context) (*cloudwatch.DescribeAlarmsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, alarm := range page.MetricAlarms {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(alarm.AlarmName),
				Type:      types.TypeCloudWatchAlarm,
				Region:    region,
				Name:      aws.ToString(alarm.AlarmName),
				ARN:       aws.ToString(alarm.AlarmArn),
				Status:    string(alarm.StateValue),
				CreatedAt: toTime(alarm.AlarmConfigurationUpdatedTimestamp),
				Metadata: types.ResourceMetadata{
					State:        string(alarm.StateValue),
					LastActivity: toTime(alarm.StateUpdatedTimestamp),
				},
			})
		}
	}

	return resources, nil
}

// DescribeLogGroups lists all CloudWatch log groups in the region.
func (c *Connector) DescribeLogGroups(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.CloudWatchLogs(region)
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(client, &cloudwatchlogs.DescribeLogGroupsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "logs:DescribeLogGroups",
			func(ctx context.Context) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, group := range page.LogGroups {
			var created time.Time
			if group.CreationTime != nil {
				created = time.UnixMilli(aws.ToInt64(group.CreationTime)).UTC()
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(group.LogGroupName),
				Type:      types.TypeLogGroup,
				Region:    region,
				Name:      aws.ToString(group.LogGroupName),
				ARN:       aws.ToString(group.Arn),
				Status:    "active",
				CreatedAt: created,
				Metadata: types.ResourceMetadata{
					SizeBytes:     aws.ToInt64(group.StoredBytes),
					RetentionDays: aws.ToInt32(group.RetentionInDays),
					Encrypted:     group.KmsKeyId != nil,
				},
			})
		}
	}

	return resources, nil
}

// DescribeTrails lists CloudTrail trails visible from the region.
// DescribeTrails is not paginated. Logging status is a best-effort
// detail call per trail.
func (c *Connector) DescribeTrails(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.CloudTrail(region)

	out, err := awsretry.DoValue(ctx, c.retry, "cloudtrail:DescribeTrails",
		func(ctx context.Context) (*cloudtrail.DescribeTrailsOutput, error) {
			return client.DescribeTrails(ctx, &cloudtrail.DescribeTrailsInput{})
		})
	if err != nil {
		return nil, err
	}

	resources := make([]types.Resource, 0, len(out.TrailList))
	for _, trail := range out.TrailList {
		status := "unknown"
		statusOut, serr := awsretry.DoValue(ctx, c.retry, "cloudtrail:GetTrailStatus",
			func(ctx context.Context) (*cloudtrail.GetTrailStatusOutput, error) {
				return client.GetTrailStatus(ctx, &cloudtrail.GetTrailStatusInput{
					Name: trail.TrailARN,
				})
			})
		if serr == nil {
			if aws.ToBool(statusOut.IsLogging) {
				status = "logging"
			} else {
				status = "stopped"
			}
		}

		resources = append(resources, types.Resource{
			ID:     aws.ToString(trail.Name),
			Type:   types.TypeCloudTrail,
			Region: region,
			Name:   aws.ToString(trail.Name),
			ARN:    aws.ToString(trail.TrailARN),
			Status: status,
			Metadata: types.ResourceMetadata{
				State:     status,
				Encrypted: trail.KmsKeyId != nil,
				MultiAZ:   aws.ToBool(trail.IsMultiRegionTrail),
			},
		})
	}

	return resources, nil
}
