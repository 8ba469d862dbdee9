package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/wafv2"
	wafv2types "github.com/aws/aws-sdk-go-v2/service/wafv2/types"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeSecrets lists all Secrets Manager secrets in the region.
func (c *Connector) DescribeSecrets(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.SecretsManager(region)
	paginator := secretsmanager.NewListSecretsPaginator(client, &secretsmanager.ListSecretsInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "secretsmanager:ListSecrets",
			func(ctx context.Context) (*secretsmanager.ListSecretsOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, secret := range page.SecretList {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(secret.Name),
				Type:      types.TypeSecret,
				Region:    region,
				Name:      aws.ToString(secret.Name),
				ARN:       aws.ToString(secret.ARN),
				Status:    "available",
				Tags:      convertTags(secret.Tags),
				CreatedAt: toTime(secret.CreatedDate),
				Metadata: types.ResourceMetadata{
					// Secrets are always encrypted, with the default
					// service key when none is configured
					Encrypted:    true,
					LastActivity: toTime(secret.LastAccessedDate),
				},
			})
		}
	}

	return resources, nil
}

// DescribeKMSKeys lists all KMS keys and describes each one. A failed
// per-key describe drops that key only.
func (c *Connector) DescribeKMSKeys(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.KMS(region)
	paginator := kms.NewListKeysPaginator(client, &kms.ListKeysInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "kms:ListKeys",
			func(ctx context.Context) (*kms.ListKeysOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, key := range page.Keys {
			keyID := aws.ToString(key.KeyId)

			out, err := awsretry.DoValue(ctx, c.retry, "kms:DescribeKey",
				func(ctx context.Context) (*kms.DescribeKeyOutput, error) {
					return client.DescribeKey(ctx, &kms.DescribeKeyInput{
						KeyId: aws.String(keyID),
					})
				})
			if err != nil || out.KeyMetadata == nil {
				continue
			}

			meta := out.KeyMetadata
			name := aws.ToString(meta.Description)
			if name == "" {
				name = types.NotAvailable
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(meta.KeyId),
				Type:      types.TypeKMSKey,
				Region:    region,
				Name:      name,
				ARN:       aws.ToString(meta.Arn),
				Status:    string(meta.KeyState),
				CreatedAt: toTime(meta.CreationDate),
				Metadata: types.ResourceMetadata{
					State:     string(meta.KeyState),
					KeyState:  string(meta.KeyState),
					KeyUsage:  string(meta.KeyUsage),
					Encrypted: true,
				},
			})
		}
	}

	return resources, nil
}

// DescribeWebACLs lists regional WAFv2 web ACLs. ListWebACLs has no
// paginator, so the marker loop is explicit.
func (c *Connector) DescribeWebACLs(ctx context.Context, region string) ([]types.Resource, error) {
	client := c.clients.WAFV2(region)

	var resources []types.Resource
	var nextMarker *string
	for {
		out, err := awsretry.DoValue(ctx, c.retry, "wafv2:ListWebACLs",
			func(ctx context.Context) (*wafv2.ListWebACLsOutput, error) {
				return client.ListWebACLs(ctx, &wafv2.ListWebACLsInput{
					Scope:      wafv2types.ScopeRegional,
					NextMarker: nextMarker,
				})
			})
		if err != nil {
			return nil, err
		}

		for _, acl := range out.WebACLs {
			resources = append(resources, types.Resource{
				ID:     aws.ToString(acl.Id),
				Type:   types.TypeWebACL,
				Region: region,
				Name:   aws.ToString(acl.Name),
				ARN:    aws.ToString(acl.ARN),
				Status: "active",
			})
		}

		if out.NextMarker == nil || len(out.WebACLs) == 0 {
			break
		}
		nextMarker = out.NextMarker
	}

	return resources, nil
}
