package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeStacks lists all CloudFormation stacks in the region.
func (c *Connector) DescribeStacks(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.CloudFormation(region)
	paginator := cloudformation.NewDescribeStacksPaginator(client, &cloudformation.DescribeStacksInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "cloudformation:DescribeStacks",
			func(ctx context.Context) (*cloudformation.DescribeStacksOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, stack := range page.Stacks {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(stack.StackId),
				Type:      types.TypeCFNStack,
				Region:    region,
				Name:      aws.ToString(stack.StackName),
				ARN:       aws.ToString(stack.StackId),
				Status:    string(stack.StackStatus),
				Tags:      convertTags(stack.Tags),
				CreatedAt: toTime(stack.CreationTime),
				Metadata: types.ResourceMetadata{
					State:        string(stack.StackStatus),
					LastActivity: toTime(stack.LastUpdatedTime),
				},
			})
		}
	}

	return resources, nil
}

// DescribeRestAPIs lists all API Gateway REST APIs in the region.
func (c *Connector) DescribeRestAPIs(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.APIGateway(region)
	paginator := apigateway.NewGetRestApisPaginator(client, &apigateway.GetRestApisInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "apigateway:GetRestApis",
			func(ctx context.Context) (*apigateway.GetRestApisOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, api := range page.Items {
			id := aws.ToString(api.Id)
			scheme := "EDGE"
			if api.EndpointConfiguration != nil && len(api.EndpointConfiguration.Types) > 0 {
				scheme = string(api.EndpointConfiguration.Types[0])
			}

			resources = append(resources, types.Resource{
				ID:        id,
				Type:      types.TypeAPIGateway,
				Region:    region,
				Name:      aws.ToString(api.Name),
				ARN:       c.arn("apigateway", region, "restapis", id),
				Status:    "available",
				Tags:      api.Tags,
				CreatedAt: toTime(api.CreatedDate),
				Metadata: types.ResourceMetadata{
					Scheme: scheme,
				},
			})
		}
	}

	return resources, nil
}

// DescribeParameters lists all SSM parameters in the region. Values are
// never fetched, only parameter metadata.
func (c *Connector) DescribeParameters(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.SSM(region)
	paginator := ssm.NewDescribeParametersPaginator(client, &ssm.DescribeParametersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "ssm:DescribeParameters",
			func(ctx context.Context) (*ssm.DescribeParametersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, param := range page.Parameters {
			name := aws.ToString(param.Name)
			resources = append(resources, types.Resource{
				ID:     name,
				Type:   types.TypeSSMParameter,
				Region: region,
				Name:   name,
				ARN:    aws.ToString(param.ARN),
				Status: "active",
				Metadata: types.ResourceMetadata{
					Engine:       string(param.Type),
					Encrypted:    param.Type == "SecureString",
					LastActivity: toTime(param.LastModifiedDate),
				},
			})
		}
	}

	return resources, nil
}
