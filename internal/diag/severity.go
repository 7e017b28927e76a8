package diag

// Severity ranks how serious a diagnostic is. Bags sort more severe
// items first within a span, and short output prints the upper-case
// label returned by String.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError makes Bag.HasErrors true, which is what drives the
	// non-zero exit status of a run.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	case SevInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}
