package awsretry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "simulated"}
}

func TestDoRetriesThrottlingUntilExhausted(t *testing.T) {
	e := New(3, 2*time.Millisecond)

	calls := 0
	start := time.Now()
	err := e.Do(context.Background(), "ec2:DescribeInstances", func(ctx context.Context) error {
		calls++
		return apiError("ThrottlingException")
	})
	elapsed := time.Since(start)

	// 1 initial + 3 retries
	assert.Equal(t, 4, calls)
	require.Error(t, err)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ClassThrottling, rerr.Class)
	assert.Equal(t, 4, rerr.Attempts)
	assert.Contains(t, err.Error(), "ec2:DescribeInstances")

	// backoff is base*(2^0 + 2^1 + 2^2)
	assert.GreaterOrEqual(t, elapsed, 14*time.Millisecond)
}

func TestDoNoRetryOnTerminal(t *testing.T) {
	e := New(3, time.Millisecond)

	calls := 0
	err := e.Do(context.Background(), "s3:ListBuckets", func(ctx context.Context) error {
		calls++
		return apiError("AccessDenied")
	})

	assert.Equal(t, 1, calls)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ClassTerminal, rerr.Class)
	assert.Contains(t, err.Error(), "check IAM permissions")
}

func TestDoNoRetryOnCredential(t *testing.T) {
	e := New(3, time.Millisecond)

	calls := 0
	err := e.Do(context.Background(), "rds:DescribeDBInstances", func(ctx context.Context) error {
		calls++
		return apiError("ExpiredToken")
	})

	assert.Equal(t, 1, calls)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ClassCredential, rerr.Class)
}

func TestDoSucceedsAfterTransientFailure(t *testing.T) {
	e := New(3, time.Millisecond)

	calls := 0
	err := e.Do(context.Background(), "eks:ListClusters", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apiError("ServiceUnavailable")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnContextCancel(t *testing.T) {
	e := New(3, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Do(ctx, "sqs:ListQueues", func(ctx context.Context) error {
		return apiError("ThrottlingException")
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDoValue(t *testing.T) {
	e := New(3, time.Millisecond)

	out, err := DoValue(context.Background(), e, "lambda:ListFunctions", func(ctx context.Context) ([]string, error) {
		return []string{"fn-a", "fn-b"}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"fn-a", "fn-b"}, out)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"throttling code", apiError("TooManyRequestsException"), ClassThrottling},
		{"request limit", apiError("RequestLimitExceeded"), ClassThrottling},
		{"expired token", apiError("ExpiredTokenException"), ClassCredential},
		{"auth failure", apiError("AuthFailure"), ClassCredential},
		{"service unavailable", apiError("ServiceUnavailable"), ClassRetryable},
		{"internal error", apiError("InternalError"), ClassRetryable},
		{"access denied", apiError("AccessDeniedException"), ClassTerminal},
		{"validation", apiError("ValidationException"), ClassTerminal},
		{"plain error", errors.New("boom"), ClassTerminal},
		{"deadline", context.DeadlineExceeded, ClassRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
