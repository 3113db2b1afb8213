package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// CompletionLevel represents how a month-to-date total tracks its target.
	CompletionLevel string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All completion levels supported.
const (
	MetLevel     CompletionLevel = "Met"
	NearLevel    CompletionLevel = "Near"
	BehindLevel  CompletionLevel = "Behind"
	AtRiskLevel  CompletionLevel = "AtRisk"
	UnknownLevel CompletionLevel = "Unknown"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
