package inventory

import (
	"fmt"
	"time"

	"github.com/cloudtally/cloudtally/types"
)

const dateLayout = "2006-01-02"

// Normalize maps one collected resource into the common report record.
// Every optional field lands on the N/A sentinel when the service did
// not report it; derived fields follow fixed rules (a public indicator
// maps to Public/Private, an encryption flag to Yes/No) and are never
// inferred.
func Normalize(r types.Resource) Record {
	region := r.Region
	if region == "" {
		region = types.NotAvailable
	}

	return Record{
		Type:          r.Type,
		Name:          r.DisplayName(),
		Region:        region,
		Identifier:    r.Identifier(),
		State:         stateOf(r),
		Tags:          types.SerializeTags(r.Tags),
		CreatedDate:   dateOrNA(r.CreatedAt),
		PublicAccess:  publicAccess(r.Metadata.PubliclyAccessible),
		Size:          sizeOf(r),
		Encrypted:     yesNo(r.Metadata.Encrypted),
		VpcID:         orNA(r.Metadata.VpcID),
		LastActivity:  dateOrNA(r.Metadata.LastActivity),
		VersionStatus: versionStatus(r),
	}
}

// NormalizeAll maps a collector's full result set, preserving order.
func NormalizeAll(resources []types.Resource) []Record {
	records := make([]Record, 0, len(resources))
	for _, r := range resources {
		records = append(records, Normalize(r))
	}
	return records
}

func stateOf(r types.Resource) string {
	if r.Status != "" {
		return r.Status
	}
	return orNA(r.Metadata.State)
}

// sizeOf maps the per-kind capacity notion into the single generic
// size column. Disk kinds report gigabytes, serverless memory,
// clusters node counts, and queues and tables item counts.
func sizeOf(r types.Resource) string {
	m := r.Metadata

	switch r.Type {
	case types.TypeEC2Instance:
		return orNA(m.InstanceType)

	case types.TypeEBSVolume, types.TypeEBSSnapshot,
		types.TypeRDSInstance, types.TypeRDSCluster, types.TypeRDSSnapshot:
		if m.AllocatedStorage > 0 {
			return fmt.Sprintf("%d GB", m.AllocatedStorage)
		}

	case types.TypeDynamoDBTable:
		if m.ItemCount > 0 || m.SizeBytes > 0 {
			return fmt.Sprintf("%d items", m.ItemCount)
		}

	case types.TypeLambdaFunction:
		if m.MemorySize > 0 {
			return fmt.Sprintf("%d MB", m.MemorySize)
		}

	case types.TypeElastiCache, types.TypeMemoryDB, types.TypeRedshiftCluster,
		types.TypeOpenSearchDomain, types.TypeDocDBCluster, types.TypeNeptuneCluster:
		if m.NodeCount > 0 {
			return fmt.Sprintf("%d nodes", m.NodeCount)
		}
		return orNA(m.InstanceClass)

	case types.TypeAutoScalingGroup:
		return fmt.Sprintf("%d instances", m.DesiredCapacity)

	case types.TypeECSCluster:
		if m.ItemCount > 0 {
			return fmt.Sprintf("%d services", m.ItemCount)
		}

	case types.TypeSQSQueue:
		if m.ItemCount > 0 {
			return fmt.Sprintf("%d messages", m.ItemCount)
		}

	case types.TypeLogGroup:
		if m.SizeBytes > 0 {
			return humanBytes(m.SizeBytes)
		}

	case types.TypeHostedZone:
		if m.RecordCount > 0 {
			return fmt.Sprintf("%d records", m.RecordCount)
		}
	}

	return types.NotAvailable
}

// versionStatus classifies engine and runtime versions against the
// static support table. Kinds without a version notion stay N/A.
func versionStatus(r types.Resource) string {
	m := r.Metadata

	var family, version string
	switch r.Type {
	case types.TypeRDSInstance, types.TypeRDSCluster, types.TypeRDSSnapshot,
		types.TypeDocDBCluster, types.TypeNeptuneCluster,
		types.TypeElastiCache, types.TypeMemoryDB:
		family, version = m.Engine, m.EngineVersion
	case types.TypeEKSCluster:
		family, version = "kubernetes", m.EngineVersion
	case types.TypeLambdaFunction:
		family, version = "lambda", m.Runtime
	default:
		return types.NotAvailable
	}

	if family == "" || version == "" {
		return types.NotAvailable
	}
	return ClassifyVersion(family, version).Label()
}

func publicAccess(public bool) string {
	if public {
		return "Public"
	}
	return "Private"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return types.NotAvailable
	}
	return s
}

func dateOrNA(t time.Time) string {
	if t.IsZero() {
		return types.NotAvailable
	}
	return t.Format(dateLayout)
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
