package awsretry

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Class is the retry classification of a failed remote call.
type Class int

const (
	// ClassThrottling covers rate-limit signals. Retried.
	ClassThrottling Class = iota
	// ClassRetryable covers timeouts, 5xx and service-unavailable. Retried.
	ClassRetryable
	// ClassCredential covers expired or invalid auth. Never retried.
	ClassCredential
	// ClassTerminal covers everything else, including access denied.
	ClassTerminal
)

func (c Class) String() string {
	switch c {
	case ClassThrottling:
		return "throttling"
	case ClassRetryable:
		return "retryable"
	case ClassCredential:
		return "credential"
	default:
		return "terminal"
	}
}

var throttlingCodes = map[string]bool{
	"Throttling":                true,
	"ThrottlingException":       true,
	"ThrottledException":        true,
	"RequestThrottled":          true,
	"RequestThrottledException": true,
	"RequestLimitExceeded":      true,
	"TooManyRequestsException":  true,
	"SlowDown":                  true,
	"EC2ThrottledException":     true,
}

var credentialCodes = map[string]bool{
	"ExpiredToken":            true,
	"ExpiredTokenException":   true,
	"InvalidClientTokenId":    true,
	"InvalidAccessKeyId":      true,
	"UnrecognizedClientException": true,
	"AuthFailure":             true,
	"SignatureDoesNotMatch":   true,
	"TokenRefreshRequired":    true,
}

var retryableCodes = map[string]bool{
	"RequestTimeout":              true,
	"RequestTimeoutException":     true,
	"ServiceUnavailable":          true,
	"ServiceUnavailableException": true,
	"InternalError":               true,
	"InternalFailure":             true,
	"InternalServerError":         true,
	"ServiceFailure":              true,
	"TransactionInProgressException": true,
}

// Classify maps an error from an AWS SDK call to its retry class.
// Unknown errors are terminal: retrying a call we do not understand
// only burns the rate limit.
func Classify(err error) Class {
	if err == nil {
		return ClassTerminal
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case throttlingCodes[code]:
			return ClassThrottling
		case credentialCodes[code]:
			return ClassCredential
		case retryableCodes[code]:
			return ClassRetryable
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() >= 500 {
		return ClassRetryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassRetryable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassRetryable
	}

	return ClassTerminal
}

// suggestion returns the operator hint attached to surfaced errors.
func suggestion(class Class) string {
	switch class {
	case ClassThrottling:
		return "reduce scan concurrency or retry later"
	case ClassCredential:
		return "refresh credentials and re-run"
	case ClassTerminal:
		return "check IAM permissions for this operation"
	default:
		return "transient service failure, re-run may succeed"
	}
}
