package aws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLambdaTime(t *testing.T) {
	parsed := parseLambdaTime("2024-03-07T15:30:01.123+0000")
	assert.Equal(t,
		time.Date(2024, 3, 7, 15, 30, 1, 123000000, time.UTC),
		parsed.UTC())

	assert.Equal(t,
		time.Date(2024, 3, 7, 15, 30, 1, 0, time.UTC),
		parseLambdaTime("2024-03-07T15:30:01Z").UTC(),
		"plain RFC3339 accepted too")

	assert.True(t, parseLambdaTime("").IsZero())
	assert.True(t, parseLambdaTime("yesterday").IsZero())
}
