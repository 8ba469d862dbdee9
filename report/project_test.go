package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtally/cloudtally/inventory"
)

func TestHeaderBasicMode(t *testing.T) {
	assert.Equal(t, []string{"Type", "Name", "Region", "ARN"}, Header(ModeBasic))
}

func TestHeaderColumnCounts(t *testing.T) {
	assert.Len(t, Header(ModeBasic), 4)
	assert.Len(t, Header(ModeDetailed), 9)
	assert.Len(t, Header(ModeSecurity), 9)
	assert.Len(t, Header(ModeCost), 8)
}

func TestRowMatchesHeaderLength(t *testing.T) {
	// Records with arbitrary subsets of optional fields populated must
	// always project to the header's column count.
	records := []inventory.Record{
		{},
		{Type: "EC2", Name: "web", Region: "us-east-1", Identifier: "i-1"},
		{Type: "RDS", State: "available", Encrypted: "Yes", VersionStatus: "Current"},
		{Type: "S3", Tags: "env=prod; team=data", Size: "N/A", LastActivity: "2024-01-01"},
	}

	for _, mode := range Modes() {
		want := len(Header(mode))
		for _, rec := range records {
			assert.Len(t, Row(rec, mode), want, "mode %s", mode)
		}
	}
}

func TestRowFieldOrderFollowsHeader(t *testing.T) {
	rec := inventory.Record{
		Type:          "RDS",
		Name:          "orders-db",
		Region:        "eu-west-1",
		Identifier:    "arn:aws:rds:eu-west-1:123456789012:db:orders-db",
		State:         "available",
		Tags:          "env=prod",
		CreatedDate:   "2023-06-15",
		PublicAccess:  "Private",
		Size:          "100 GB",
		Encrypted:     "Yes",
		VpcID:         "vpc-abc123",
		LastActivity:  "2024-02-01",
		VersionStatus: "Current",
	}

	security := Row(rec, ModeSecurity)
	require.Len(t, security, 9)
	assert.Equal(t, []string{
		"RDS", "orders-db", "eu-west-1", "arn:aws:rds:eu-west-1:123456789012:db:orders-db",
		"available", "Yes", "Private", "vpc-abc123", "Current",
	}, security)

	cost := Row(rec, ModeCost)
	assert.Equal(t, []string{
		"RDS", "orders-db", "eu-west-1", "arn:aws:rds:eu-west-1:123456789012:db:orders-db",
		"available", "100 GB", "2023-06-15", "2024-02-01",
	}, cost)
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		got, err := ParseMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ParseMode("verbose")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, f := range []string{"csv", "xlsx", "both"} {
		_, err := ParseFormat(f)
		assert.NoError(t, err)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}
