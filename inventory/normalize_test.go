package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cloudtally/cloudtally/types"
)

func TestNormalizeFullRecord(t *testing.T) {
	created := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)

	rec := Normalize(types.Resource{
		ID:        "db-1",
		Type:      types.TypeRDSInstance,
		Region:    "eu-west-1",
		Name:      "orders-db",
		ARN:       "arn:aws:rds:eu-west-1:123456789012:db:orders-db",
		Status:    "available",
		Tags:      map[string]string{"env": "prod"},
		CreatedAt: created,
		Metadata: types.ResourceMetadata{
			Engine:           "postgres",
			EngineVersion:    "11.4",
			AllocatedStorage: 100,
			Encrypted:        true,
			VpcID:            "vpc-abc123",
		},
	})

	assert.Equal(t, types.TypeRDSInstance, rec.Type)
	assert.Equal(t, "orders-db", rec.Name)
	assert.Equal(t, "eu-west-1", rec.Region)
	assert.Equal(t, "arn:aws:rds:eu-west-1:123456789012:db:orders-db", rec.Identifier)
	assert.Equal(t, "available", rec.State)
	assert.Equal(t, "env=prod", rec.Tags)
	assert.Equal(t, "2023-06-15", rec.CreatedDate)
	assert.Equal(t, "Private", rec.PublicAccess)
	assert.Equal(t, "100 GB", rec.Size)
	assert.Equal(t, "Yes", rec.Encrypted)
	assert.Equal(t, "vpc-abc123", rec.VpcID)
	assert.Equal(t, "End of Life (2024-02-29)", rec.VersionStatus)
}

func TestNormalizeSentinelsNeverEmpty(t *testing.T) {
	rec := Normalize(types.Resource{
		ID:     "i-minimal",
		Type:   types.TypeEC2Instance,
		Region: "us-east-1",
	})

	assert.Equal(t, types.NotAvailable, rec.State)
	assert.Equal(t, types.NotAvailable, rec.Tags)
	assert.Equal(t, types.NotAvailable, rec.CreatedDate)
	assert.Equal(t, types.NotAvailable, rec.Size)
	assert.Equal(t, types.NotAvailable, rec.VpcID)
	assert.Equal(t, types.NotAvailable, rec.LastActivity)
	assert.Equal(t, types.NotAvailable, rec.VersionStatus)
	assert.Equal(t, "Private", rec.PublicAccess)
	assert.Equal(t, "No", rec.Encrypted)
	assert.Equal(t, "i-minimal", rec.Name, "name falls back to the ID")
}

func TestNormalizeSizePerKind(t *testing.T) {
	tests := []struct {
		name     string
		resource types.Resource
		want     string
	}{
		{
			name: "instance type",
			resource: types.Resource{
				Type:     types.TypeEC2Instance,
				Metadata: types.ResourceMetadata{InstanceType: "t3.medium"},
			},
			want: "t3.medium",
		},
		{
			name: "volume gigabytes",
			resource: types.Resource{
				Type:     types.TypeEBSVolume,
				Metadata: types.ResourceMetadata{AllocatedStorage: 500},
			},
			want: "500 GB",
		},
		{
			name: "table items",
			resource: types.Resource{
				Type:     types.TypeDynamoDBTable,
				Metadata: types.ResourceMetadata{ItemCount: 3, SizeBytes: 2048},
			},
			want: "3 items",
		},
		{
			name: "function memory",
			resource: types.Resource{
				Type:     types.TypeLambdaFunction,
				Metadata: types.ResourceMetadata{MemorySize: 512},
			},
			want: "512 MB",
		},
		{
			name: "cache nodes",
			resource: types.Resource{
				Type:     types.TypeElastiCache,
				Metadata: types.ResourceMetadata{NodeCount: 3},
			},
			want: "3 nodes",
		},
		{
			name: "scaling group capacity",
			resource: types.Resource{
				Type:     types.TypeAutoScalingGroup,
				Metadata: types.ResourceMetadata{DesiredCapacity: 4},
			},
			want: "4 instances",
		},
		{
			name: "log group bytes",
			resource: types.Resource{
				Type:     types.TypeLogGroup,
				Metadata: types.ResourceMetadata{SizeBytes: 5 << 30},
			},
			want: "5.0 GB",
		},
		{
			name:     "kind with no size notion",
			resource: types.Resource{Type: types.TypeSNSTopic},
			want:     types.NotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.resource).Size)
		})
	}
}

func TestNormalizePublicAccess(t *testing.T) {
	public := Normalize(types.Resource{
		Type:     types.TypeS3Bucket,
		Metadata: types.ResourceMetadata{PubliclyAccessible: true},
	})
	assert.Equal(t, "Public", public.PublicAccess)

	private := Normalize(types.Resource{Type: types.TypeS3Bucket})
	assert.Equal(t, "Private", private.PublicAccess)
}

func TestNormalizeVersionStatusOnlyForVersionedKinds(t *testing.T) {
	eks := Normalize(types.Resource{
		Type:     types.TypeEKSCluster,
		Metadata: types.ResourceMetadata{EngineVersion: "1.24"},
	})
	assert.Equal(t, "End of Life (2025-01-31)", eks.VersionStatus)

	lambda := Normalize(types.Resource{
		Type:     types.TypeLambdaFunction,
		Metadata: types.ResourceMetadata{Runtime: "nodejs20.x"},
	})
	assert.Equal(t, "Current", lambda.VersionStatus)

	bucket := Normalize(types.Resource{Type: types.TypeS3Bucket})
	assert.Equal(t, types.NotAvailable, bucket.VersionStatus)
}
