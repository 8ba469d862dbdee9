package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeAutoScalingGroups lists all auto scaling groups in the region.
func (c *Connector) DescribeAutoScalingGroups(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.AutoScaling(region)
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(client, &autoscaling.DescribeAutoScalingGroupsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "autoscaling:DescribeAutoScalingGroups",
			func(ctx context.Context) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, group := range page.AutoScalingGroups {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(group.AutoScalingGroupName),
				Type:      types.TypeAutoScalingGroup,
				Region:    region,
				Name:      aws.ToString(group.AutoScalingGroupName),
				ARN:       aws.ToString(group.AutoScalingGroupARN),
				Status:    "active",
				Tags:      convertTags(group.Tags),
				CreatedAt: toTime(group.CreatedTime),
				Metadata: types.ResourceMetadata{
					DesiredCapacity: aws.ToInt32(group.DesiredCapacity),
					MinSize:         aws.ToInt32(group.MinSize),
					MaxSize:         aws.ToInt32(group.MaxSize),
					NodeCount:       len(group.Instances),
				},
			})
		}
	}

	return resources, nil
}

// DescribeLoadBalancers lists all v2 load balancers in the region.
// Tags require a separate call and are fetched best-effort per page.
func (c *Connector) DescribeLoadBalancers(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.ELBV2(region)
	paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(client, &elasticloadbalancingv2.DescribeLoadBalancersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "elbv2:DescribeLoadBalancers",
			func(ctx context.Context) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		tagsByARN := c.loadBalancerTags(ctx, client, page.LoadBalancers)

		for _, lb := range page.LoadBalancers {
			var state string
			if lb.State != nil {
				state = string(lb.State.Code)
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(lb.LoadBalancerArn),
				Type:      types.TypeLoadBalancer,
				Region:    region,
				Name:      aws.ToString(lb.LoadBalancerName),
				ARN:       aws.ToString(lb.LoadBalancerArn),
				Status:    state,
				Tags:      tagsByARN[aws.ToString(lb.LoadBalancerArn)],
				CreatedAt: toTime(lb.CreatedTime),
				Metadata: types.ResourceMetadata{
					State:              state,
					DNSName:            aws.ToString(lb.DNSName),
					Scheme:             string(lb.Scheme),
					LoadBalancerType:   string(lb.Type),
					VpcID:              aws.ToString(lb.VpcId),
					SecurityGroups:     lb.SecurityGroups,
					PubliclyAccessible: lb.Scheme == elbv2types.LoadBalancerSchemeEnumInternetFacing,
				},
			})
		}
	}

	return resources, nil
}

// loadBalancerTags fetches tags for up to one page of load balancers.
// A tag fetch failure never fails the parent records.
func (c *Connector) loadBalancerTags(ctx context.Context, client *elasticloadbalancingv2.Client, lbs []elbv2types.LoadBalancer) map[string]map[string]string {
	result := make(map[string]map[string]string)

	// DescribeTags accepts at most 20 ARNs per call
	const chunkSize = 20
	var arns []string
	for _, lb := range lbs {
		arns = append(arns, aws.ToString(lb.LoadBalancerArn))
	}

	for start := 0; start < len(arns); start += chunkSize {
		end := start + chunkSize
		if end > len(arns) {
			end = len(arns)
		}

		out, err := awsretry.DoValue(ctx, c.retry, "elbv2:DescribeTags",
			func(ctx context.Context) (*elasticloadbalancingv2.DescribeTagsOutput, error) {
				return client.DescribeTags(ctx, &elasticloadbalancingv2.DescribeTagsInput{
					ResourceArns: arns[start:end],
				})
			})
		if err != nil {
			continue
		}

		for _, desc := range out.TagDescriptions {
			result[aws.ToString(desc.ResourceArn)] = convertTags(desc.Tags)
		}
	}

	return result
}

// DescribeTargetGroups lists all target groups in the region.
func (c *Connector) DescribeTargetGroups(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.ELBV2(region)
	paginator := elasticloadbalancingv2.NewDescribeTargetGroupsPaginator(client, &elasticloadbalancingv2.DescribeTargetGroupsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "elbv2:DescribeTargetGroups",
			func(ctx context.Context) (*elasticloadbalancingv2.DescribeTargetGroupsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, tg := range page.TargetGroups {
			resources = append(resources, types.Resource{
				ID:     aws.ToString(tg.TargetGroupArn),
				Type:   types.TypeTargetGroup,
				Region: region,
				Name:   aws.ToString(tg.TargetGroupName),
				ARN:    aws.ToString(tg.TargetGroupArn),
				Status: "active",
				Metadata: types.ResourceMetadata{
					VpcID: aws.ToString(tg.VpcId),
					Port:  aws.ToInt32(tg.Port),
				},
			})
		}
	}

	return resources, nil
}
