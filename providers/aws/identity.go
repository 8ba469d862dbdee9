package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeIAMUsers lists all IAM users in the account.
func (c *Connector) DescribeIAMUsers(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.IAM()
	paginator := iam.NewListUsersPaginator(client, &iam.ListUsersInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "iam:ListUsers",
			func(ctx context.Context) (*iam.ListUsersOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, user := range page.Users {
			resources = append(resources, types.Resource{
				ID:        aws.ToString(user.UserId),
				Type:      types.TypeIAMUser,
				Region:    types.RegionGlobal,
				Name:      aws.ToString(user.UserName),
				ARN:       aws.ToString(user.Arn),
				Status:    "active",
				Tags:      convertTags(user.Tags),
				CreatedAt: toTime(user.CreateDate),
				Metadata: types.ResourceMetadata{
					LastActivity: toTime(user.PasswordLastUsed),
				},
			})
		}
	}

	return resources, nil
}

// DescribeIAMRoles lists all IAM roles in the account.
func (c *Connector) DescribeIAMRoles(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.IAM()
	paginator := iam.NewListRolesPaginator(client, &iam.ListRolesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "iam:ListRoles",
			func(ctx context.Context) (*iam.ListRolesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, role := range page.Roles {
			var lastUsed types.ResourceMetadata
			if role.RoleLastUsed != nil {
				lastUsed.LastActivity = toTime(role.RoleLastUsed.LastUsedDate)
			}

			resources = append(resources, types.Resource{
				ID:        aws.ToString(role.RoleId),
				Type:      types.TypeIAMRole,
				Region:    types.RegionGlobal,
				Name:      aws.ToString(role.RoleName),
				ARN:       aws.ToString(role.Arn),
				Status:    "active",
				Tags:      convertTags(role.Tags),
				CreatedAt: toTime(role.CreateDate),
				Metadata:  lastUsed,
			})
		}
	}

	return resources, nil
}
