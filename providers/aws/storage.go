package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeBuckets lists all S3 buckets in the account. Buckets are
// account-wide so they are reported under the global pseudo-region.
// Public-access, encryption and tag lookups are best-effort per bucket;
// a bucket missing any of those still gets a row.
func (c *Connector) DescribeBuckets(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.S3()

	out, err := awsretry.DoValue(ctx, c.retry, "s3:ListBuckets",
		func(ctx context.Context) (*s3.ListBucketsOutput, error) {
			return client.ListBuckets(ctx, &s3.ListBucketsInput{})
		})
	if err != nil {
		return nil, err
	}

	resources := make([]types.Resource, 0, len(out.Buckets))
	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)

		resources = append(resources, types.Resource{
			ID:        name,
			Type:      types.TypeS3Bucket,
			Region:    types.RegionGlobal,
			Name:      name,
			ARN:       "arn:aws:s3:::" + name,
			Status:    "available",
			Tags:      c.bucketTags(ctx, client, name),
			CreatedAt: toTime(bucket.CreationDate),
			Metadata: types.ResourceMetadata{
				PubliclyAccessible: c.bucketIsPublic(ctx, client, name),
				Encrypted:          c.bucketEncrypted(ctx, client, name),
				Versioning:         c.bucketVersioning(ctx, client, name),
			},
		})
	}

	return resources, nil
}

func (c *Connector) bucketIsPublic(ctx context.Context, client *s3.Client, name string) bool {
	out, err := awsretry.DoValue(ctx, c.retry, "s3:GetBucketPolicyStatus",
		func(ctx context.Context) (*s3.GetBucketPolicyStatusOutput, error) {
			return client.GetBucketPolicyStatus(ctx, &s3.GetBucketPolicyStatusInput{
				Bucket: aws.String(name),
			})
		})
	if err != nil || out.PolicyStatus == nil {
		return false
	}
	return aws.ToBool(out.PolicyStatus.IsPublic)
}

func (c *Connector) bucketEncrypted(ctx context.Context, client *s3.Client, name string) bool {
	out, err := awsretry.DoValue(ctx, c.retry, "s3:GetBucketEncryption",
		func(ctx context.Context) (*s3.GetBucketEncryptionOutput, error) {
			return client.GetBucketEncryption(ctx, &s3.GetBucketEncryptionInput{
				Bucket: aws.String(name),
			})
		})
	if err != nil || out.ServerSideEncryptionConfiguration == nil {
		return false
	}
	return len(out.ServerSideEncryptionConfiguration.Rules) > 0
}

func (c *Connector) bucketVersioning(ctx context.Context, client *s3.Client, name string) string {
	out, err := awsretry.DoValue(ctx, c.retry, "s3:GetBucketVersioning",
		func(ctx context.Context) (*s3.GetBucketVersioningOutput, error) {
			return client.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{
				Bucket: aws.String(name),
			})
		})
	if err != nil || out.Status == "" {
		return "Disabled"
	}
	return string(out.Status)
}

func (c *Connector) bucketTags(ctx context.Context, client *s3.Client, name string) map[string]string {
	out, err := awsretry.DoValue(ctx, c.retry, "s3:GetBucketTagging",
		func(ctx context.Context) (*s3.GetBucketTaggingOutput, error) {
			return client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{
				Bucket: aws.String(name),
			})
		})
	if err != nil {
		return nil
	}
	return convertTags(out.TagSet)
}
