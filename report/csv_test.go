package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtally/cloudtally/inventory"
	aws "github.com/cloudtally/cloudtally/providers/aws"
	"github.com/cloudtally/cloudtally/telemetry"
	"github.com/cloudtally/cloudtally/types"
)

func TestFilename(t *testing.T) {
	date := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "inventory_basic_123456789012_20240307.csv",
		Filename(ModeBasic, "123456789012", date, "csv"))
	assert.Equal(t, "inventory_security_prod_20240307.xlsx",
		Filename(ModeSecurity, "prod", date, "xlsx"))
}

func TestWriteCSVEscaping(t *testing.T) {
	records := []inventory.Record{
		{
			Type:       "EC2",
			Name:       `web, "primary"`,
			Region:     "us-east-1",
			Identifier: "i-1",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ModeBasic, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Type,Name,Region,ARN", lines[0])
	assert.Equal(t, `EC2,"web, ""primary""",us-east-1,i-1`, lines[1])
}

func TestSaveCSVWritesFile(t *testing.T) {
	dir := t.TempDir()
	records := []inventory.Record{
		{Type: "VPC", Name: "main", Region: "us-east-1", Identifier: "vpc-1"},
	}

	path, err := SaveCSV(dir, ModeBasic, "123456789012", records, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "inventory_basic_123456789012_20240102.csv"))
}

// bucketCollector stands in for the storage collector in the
// end-to-end scenario below.
type bucketCollector struct{}

func (bucketCollector) Name() string         { return "s3" }
func (bucketCollector) ResourceType() string { return types.TypeS3Bucket }
func (bucketCollector) Global() bool         { return true }
func (bucketCollector) Collect(context.Context, *aws.Connector, string) ([]types.Resource, error) {
	return []types.Resource{{
		ID:        "example-bucket",
		Type:      types.TypeS3Bucket,
		Region:    types.RegionGlobal,
		Name:      "example-bucket",
		ARN:       "arn:aws:s3:::example-bucket",
		Status:    "available",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}, nil
}

func TestBasicModeEndToEnd(t *testing.T) {
	engine := inventory.NewEngineWithCollectors(
		nil, []aws.Collector{bucketCollector{}}, telemetry.Discard{})

	result := engine.Run(context.Background(), []string{"us-east-1"})
	require.False(t, result.HadErrors)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ModeBasic, result.Records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "one header plus exactly one data row")
	assert.Equal(t, "Type,Name,Region,ARN", lines[0])
	assert.Equal(t, "S3,example-bucket,global,arn:aws:s3:::example-bucket", lines[1])
}
