// Package aws implements the per-resource-kind collectors. Each
// collector paginates one service's listing API, wraps every remote
// call in the backoff executor, and returns typed resource records.
package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/cloudtally/cloudtally/awsclients"
	"github.com/cloudtally/cloudtally/awsretry"
)

// Connector holds the shared client cache and retry executor used by
// every collector. One Connector serves one account for one run.
type Connector struct {
	clients   *awsclients.Cache
	retry     *awsretry.Executor
	accountID string
}

// NewConnector builds a connector from a resolved AWS config.
func NewConnector(cfg aws.Config) *Connector {
	return &Connector{
		clients: awsclients.NewCache(cfg),
		retry:   awsretry.DefaultExecutor(),
	}
}

// NewConnectorForProfile loads the named shared-config profile and
// builds a connector from it. An empty profile uses the ambient
// credential chain.
func NewConnectorForProfile(ctx context.Context, profile string) (*Connector, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewConnector(cfg), nil
}

// NewConnectorForAccount loads the profile and, when roleARN is set,
// layers an assume-role provider over the profile's credentials.
func NewConnectorForAccount(ctx context.Context, profile, roleARN string) (*Connector, error) {
	connector, err := NewConnectorForProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	if roleARN == "" {
		return connector, nil
	}

	cfg := connector.clients.Config()
	cfg.Credentials = aws.NewCredentialsCache(
		stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), roleARN))
	return NewConnector(cfg), nil
}

// Clients exposes the client cache, mainly for the region enumeration
// boundary and tests.
func (c *Connector) Clients() *awsclients.Cache { return c.clients }

// WithRetry overrides the retry executor. Used by tests to shrink
// backoff delays.
func (c *Connector) WithRetry(e *awsretry.Executor) *Connector {
	c.retry = e
	return c
}

// RefreshCredentials swaps the base config and drops all cached
// clients so subsequent calls run under the new identity.
func (c *Connector) RefreshCredentials(cfg aws.Config) {
	c.clients.SetConfig(cfg)
}

// AccountID resolves and memoizes the caller's account ID via STS.
func (c *Connector) AccountID(ctx context.Context) (string, error) {
	if c.accountID != "" {
		return c.accountID, nil
	}

	out, err := awsretry.DoValue(ctx, c.retry, "sts:GetCallerIdentity",
		func(ctx context.Context) (*sts.GetCallerIdentityOutput, error) {
			return c.clients.STS().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		})
	if err != nil {
		return "", err
	}

	c.accountID = aws.ToString(out.Account)
	return c.accountID, nil
}

// SetAccountID pins the account ID, skipping STS resolution.
func (c *Connector) SetAccountID(id string) { c.accountID = id }

// arn assembles an ARN for EC2-style resources that the API reports
// only by ID. Returns empty when the account is unknown; callers fall
// back to the raw ID.
func (c *Connector) arn(service, region, kind, id string) string {
	if c.accountID == "" || id == "" {
		return ""
	}
	return fmt.Sprintf("arn:aws:%s:%s:%s:%s/%s", service, region, c.accountID, kind, id)
}

// toTime dereferences an SDK timestamp, zero time when absent.
func toTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
