package report

import "github.com/cloudtally/cloudtally/inventory"

// Column orders are fixed here at compile time, never derived from
// which fields happen to be populated. Header and row order must stay
// identical; Row mirrors the switch in columns exactly.
var (
	basicColumns = []string{"Type", "Name", "Region", "ARN"}

	detailedColumns = append(basicColumns[:4:4],
		"State", "Tags", "Created", "Public Access", "Size")

	securityColumns = append(basicColumns[:4:4],
		"State", "Encrypted", "Public Access", "VPC ID", "Version Status")

	costColumns = append(basicColumns[:4:4],
		"State", "Size", "Created", "Last Activity")
)

// Header returns the column names for a mode.
func Header(mode Mode) []string {
	switch mode {
	case ModeDetailed:
		return detailedColumns
	case ModeSecurity:
		return securityColumns
	case ModeCost:
		return costColumns
	default:
		return basicColumns
	}
}

// Row projects one record into the mode's columns. Field count always
// matches Header for the same mode; absent values already carry the
// N/A sentinel from normalization, so no cell is ever empty.
func Row(rec inventory.Record, mode Mode) []string {
	base := []string{rec.Type, rec.Name, rec.Region, rec.Identifier}

	switch mode {
	case ModeDetailed:
		return append(base, rec.State, rec.Tags, rec.CreatedDate, rec.PublicAccess, rec.Size)
	case ModeSecurity:
		return append(base, rec.State, rec.Encrypted, rec.PublicAccess, rec.VpcID, rec.VersionStatus)
	case ModeCost:
		return append(base, rec.State, rec.Size, rec.CreatedDate, rec.LastActivity)
	default:
		return base
	}
}
