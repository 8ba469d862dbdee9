package inventory

import "strings"

// Support lifecycle labels for engine and runtime versions.
const (
	SupportCurrent    = "Current"
	SupportDeprecated = "Deprecated"
	SupportExtended   = "Extended Support"
	SupportEndOfLife  = "End of Life"
	SupportUnknown    = "Unknown"
)

// Support is one version-support table entry. EndDate is the published
// end-of-support date when one exists.
type Support struct {
	Status  string
	EndDate string
}

// Label renders the entry for the version status report column.
func (s Support) Label() string {
	if s.EndDate != "" {
		return s.Status + " (" + s.EndDate + ")"
	}
	return s.Status
}

// supportTable maps engine family to version support entries. Database
// engines are keyed by major version, Kubernetes by minor release, and
// serverless runtimes by their full identifier. Versions absent from
// the table classify as Unknown, never guessed.
var supportTable = map[string]map[string]Support{
	"postgres": {
		"9":  {Status: SupportEndOfLife, EndDate: "2022-03-31"},
		"10": {Status: SupportEndOfLife, EndDate: "2023-04-17"},
		"11": {Status: SupportEndOfLife, EndDate: "2024-02-29"},
		"12": {Status: SupportEndOfLife, EndDate: "2025-02-28"},
		"13": {Status: SupportExtended, EndDate: "2027-02-28"},
		"14": {Status: SupportCurrent, EndDate: "2027-02-29"},
		"15": {Status: SupportCurrent},
		"16": {Status: SupportCurrent},
		"17": {Status: SupportCurrent},
	},
	"mysql": {
		"5.5": {Status: SupportEndOfLife, EndDate: "2021-05-25"},
		"5.6": {Status: SupportEndOfLife, EndDate: "2021-08-03"},
		"5.7": {Status: SupportExtended, EndDate: "2027-02-28"},
		"8.0": {Status: SupportCurrent},
		"8.4": {Status: SupportCurrent},
	},
	"mariadb": {
		"10.3":  {Status: SupportEndOfLife, EndDate: "2023-10-23"},
		"10.4":  {Status: SupportEndOfLife, EndDate: "2024-06-30"},
		"10.5":  {Status: SupportEndOfLife, EndDate: "2025-04-30"},
		"10.6":  {Status: SupportCurrent},
		"10.11": {Status: SupportCurrent},
		"11.4":  {Status: SupportCurrent},
	},
	"aurora-postgresql": {
		"11": {Status: SupportEndOfLife, EndDate: "2024-02-29"},
		"12": {Status: SupportEndOfLife, EndDate: "2025-02-28"},
		"13": {Status: SupportExtended, EndDate: "2027-02-28"},
		"14": {Status: SupportCurrent},
		"15": {Status: SupportCurrent},
		"16": {Status: SupportCurrent},
	},
	"aurora-mysql": {
		"2": {Status: SupportEndOfLife, EndDate: "2024-10-31"},
		"3": {Status: SupportCurrent},
		"5": {Status: SupportEndOfLife, EndDate: "2024-10-31"},
		"8": {Status: SupportCurrent},
	},
	"redis": {
		"3": {Status: SupportEndOfLife, EndDate: "2021-12-31"},
		"4": {Status: SupportEndOfLife, EndDate: "2022-07-31"},
		"5": {Status: SupportDeprecated, EndDate: "2025-03-15"},
		"6": {Status: SupportCurrent},
		"7": {Status: SupportCurrent},
	},
	"memcached": {
		"1": {Status: SupportCurrent},
	},
	"kubernetes": {
		"1.23": {Status: SupportEndOfLife, EndDate: "2024-10-11"},
		"1.24": {Status: SupportEndOfLife, EndDate: "2025-01-31"},
		"1.25": {Status: SupportEndOfLife, EndDate: "2025-05-01"},
		"1.26": {Status: SupportEndOfLife, EndDate: "2025-06-11"},
		"1.27": {Status: SupportExtended, EndDate: "2026-07-24"},
		"1.28": {Status: SupportExtended, EndDate: "2026-11-26"},
		"1.29": {Status: SupportCurrent},
		"1.30": {Status: SupportCurrent},
		"1.31": {Status: SupportCurrent},
		"1.32": {Status: SupportCurrent},
		"1.33": {Status: SupportCurrent},
	},
	"lambda": {
		"python2.7":      {Status: SupportEndOfLife, EndDate: "2021-07-15"},
		"python3.6":      {Status: SupportEndOfLife, EndDate: "2022-07-18"},
		"python3.7":      {Status: SupportEndOfLife, EndDate: "2023-11-27"},
		"python3.8":      {Status: SupportEndOfLife, EndDate: "2024-10-14"},
		"python3.9":      {Status: SupportDeprecated, EndDate: "2025-12-15"},
		"python3.11":     {Status: SupportCurrent},
		"python3.12":     {Status: SupportCurrent},
		"python3.13":     {Status: SupportCurrent},
		"nodejs12.x":     {Status: SupportEndOfLife, EndDate: "2023-03-31"},
		"nodejs14.x":     {Status: SupportEndOfLife, EndDate: "2023-11-27"},
		"nodejs16.x":     {Status: SupportEndOfLife, EndDate: "2024-06-12"},
		"nodejs18.x":     {Status: SupportDeprecated, EndDate: "2025-09-01"},
		"nodejs20.x":     {Status: SupportCurrent},
		"nodejs22.x":     {Status: SupportCurrent},
		"go1.x":          {Status: SupportEndOfLife, EndDate: "2023-12-31"},
		"java8":          {Status: SupportDeprecated, EndDate: "2026-01-08"},
		"java11":         {Status: SupportCurrent},
		"java17":         {Status: SupportCurrent},
		"java21":         {Status: SupportCurrent},
		"dotnet6":        {Status: SupportEndOfLife, EndDate: "2024-12-20"},
		"dotnet8":        {Status: SupportCurrent},
		"ruby2.7":        {Status: SupportEndOfLife, EndDate: "2023-12-07"},
		"ruby3.2":        {Status: SupportCurrent},
		"ruby3.3":        {Status: SupportCurrent},
		"provided.al2":   {Status: SupportCurrent},
		"provided.al2023": {Status: SupportCurrent},
	},
}

// ClassifyVersion looks up the support status of a version within an
// engine family. The exact version string is tried first, then the
// family's key granularity (major version, or major.minor for
// Kubernetes). Anything not in the table is Unknown.
func ClassifyVersion(family, version string) Support {
	versions, ok := supportTable[strings.ToLower(family)]
	if !ok {
		return Support{Status: SupportUnknown}
	}
	if s, ok := versions[version]; ok {
		return s
	}
	if s, ok := versions[versionKey(strings.ToLower(family), version)]; ok {
		return s
	}
	return Support{Status: SupportUnknown}
}

// versionKey reduces a full version string to the granularity the
// family's table rows use.
func versionKey(family, version string) string {
	parts := strings.Split(version, ".")
	switch family {
	case "kubernetes", "mysql", "mariadb":
		if len(parts) >= 2 {
			return parts[0] + "." + parts[1]
		}
	}
	return parts[0]
}
