package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"

	"github.com/cloudtally/cloudtally/awsclients"
	"github.com/cloudtally/cloudtally/awsretry"
	"github.com/cloudtally/cloudtally/types"
)

// DescribeServiceControlPolicies lists Organizations service control
// policies. Accounts outside an organization get an empty result via
// the normal error path.
func (c *Connector) DescribeServiceControlPolicies(ctx context.Context, _ string) ([]types.Resource, error) {
	return c.describeOrgPolicies(ctx, orgtypes.PolicyTypeServiceControlPolicy, types.TypeSCP)
}

// DescribeTagPolicies lists Organizations tag policies.
func (c *Connector) DescribeTagPolicies(ctx context.Context, _ string) ([]types.Resource, error) {
	return c.describeOrgPolicies(ctx, orgtypes.PolicyTypeTagPolicy, types.TypeTagPolicy)
}

func (c *Connector) describeOrgPolicies(ctx context.Context, filter orgtypes.PolicyType, resourceType string) ([]types.Resource, error) {
	client := c.clients.Organizations()
	paginator := organizations.NewListPoliciesPaginator(client, &organizations.ListPoliciesInput{
		Filter: filter,
	})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "organizations:ListPolicies",
			func(ctx context.Context) (*organizations.ListPoliciesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, policy := range page.Policies {
			resources = append(resources, types.Resource{
				ID:     aws.ToString(policy.Id),
				Type:   resourceType,
				Region: types.RegionGlobal,
				Name:   aws.ToString(policy.Name),
				ARN:    aws.ToString(policy.Arn),
				Status: "attached",
				Metadata: types.ResourceMetadata{
					PolicyType: string(filter),
				},
			})
		}
	}

	return resources, nil
}

// DescribeConfigRules lists AWS Config rules. Config is a regional
// service but rules are reported against the global view alongside the
// other governance resources, so the us-east-1 client is used.
func (c *Connector) DescribeConfigRules(ctx context.Context, _ string) ([]types.Resource, error) {
	client := c.clients.ConfigService(awsclients.GlobalRegion)
	paginator := configservice.NewDescribeConfigRulesPaginator(client, &configservice.DescribeConfigRulesInput{})

	var resources []types.Resource
	for paginator.HasMorePages() {
		page, err := awsretry.DoValue(ctx, c.retry, "config:DescribeConfigRules",
			func(ctx context.Context) (*configservice.DescribeConfigRulesOutput, error) {
				return paginator.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		for _, rule := range page.ConfigRules {
			source := ""
			if rule.Source != nil {
				source = string(rule.Source.Owner)
			}

			resources = append(resources, types.Resource{
				ID:     aws.ToString(rule.ConfigRuleId),
				Type:   types.TypeConfigRule,
				Region: types.RegionGlobal,
				Name:   aws.ToString(rule.ConfigRuleName),
				ARN:    aws.ToString(rule.ConfigRuleArn),
				Status: string(rule.ConfigRuleState),
				Metadata: types.ResourceMetadata{
					State:      string(rule.ConfigRuleState),
					RuleSource: source,
				},
			})
		}
	}

	return resources, nil
}
