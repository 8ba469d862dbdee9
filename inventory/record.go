package inventory

// Record is the normalized, mode-agnostic row every report is built
// from. Collectors never construct one; only the normalizer does. All
// fields are render-ready strings and absent data carries the N/A
// sentinel so column counts stay stable across rows.
type Record struct {
	Type          string
	Name          string
	Region        string
	Identifier    string
	State         string
	Tags          string
	CreatedDate   string
	PublicAccess  string
	Size          string
	Encrypted     string
	VpcID         string
	LastActivity  string
	VersionStatus string
}
