package report

import "fmt"

// Mode selects which record fields a report carries.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeDetailed Mode = "detailed"
	ModeSecurity Mode = "security"
	ModeCost     Mode = "cost"
)

// Modes returns every report mode in presentation order.
func Modes() []Mode {
	return []Mode{ModeBasic, ModeDetailed, ModeSecurity, ModeCost}
}

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBasic, ModeDetailed, ModeSecurity, ModeCost:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown report mode %q (want basic, detailed, security or cost)", s)
}

// Format selects the output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatBoth Format = "both"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatBoth:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want csv, xlsx or both)", s)
}
