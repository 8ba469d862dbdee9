package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// lambdaTimeLayout is the ISO-8601 variant Lambda uses for
// LastModified, with milliseconds and a zoneless offset.
const lambdaTimeLayout = "2006-01-02T15:04:05.000-0700"

// parseLambdaTime parses Lambda's LastModified string, zero time when
// it does not parse.
func parseLambdaTime(s string) time.Time {
	if t, err := time.Parse(lambdaTimeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// DescribeLambdaFunctions lists all Lambda functions in the region.
func (c *Connector) DescribeLambdaFunctions(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.Lambda(region)
	paginator := lambda.NewListFunctionsPaginator(client, &lambda.ListFunctionsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "lambda:ListFunctions",
			func(ctx context.Context) (*lambda.ListFunctionsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, fn := range page.Functions {
			var vpcID string
			if fn.VpcConfig != nil {
				vpcID = aws.ToString(fn.VpcConfig.VpcId)
			}

			// LastModified is a string timestamp, not a time
			modified := parseLambdaTime(aws.ToString(fn.LastModified))

			resources = append(resources, types.Resource{
				ID:        aws.ToString(fn.FunctionName),
				Type:      types.TypeLambdaFunction,
				Region:    region,
				Name:      aws.ToString(fn.FunctionName),
				ARN:       aws.ToString(fn.FunctionArn),
				Status:    "available",
				CreatedAt: modified,
				Metadata: types.ResourceMetadata{
					Runtime:      string(fn.Runtime),
					Handler:      aws.ToString(fn.Handler),
					CodeSize:     fn.CodeSize,
					MemorySize:   aws.ToInt32(fn.MemorySize),
					Timeout:      aws.ToInt32(fn.Timeout),
					VpcID:        vpcID,
					LastActivity: modified,
					LastModified: aws.ToString(fn.LastModified),
				},
			})
		}
	}

	return resources, nil
}
