package schema

// Custom string types for type safety.
type (
	// Status represents the support maturity grade of a report.
	Status string

	// SourceType represents the provenance of a report record.
	SourceType string

	// OutputMode represents the format of the output.
	OutputMode string

	// SortKind represents how a sort option compares entries.
	SortKind string

	// SortField represents the field a generic sort option orders by.
	SortField string
)

// All support statuses.
const (
	GoodStatus  Status = "GOOD"  // Fully usable
	BasicStatus Status = "BASIC" // Boots with basic functionality
	CFHStatus   Status = "CFH"   // Call for help
	CFTStatus   Status = "CFT"   // Call for testing
	WIPStatus   Status = "WIP"   // Work in progress
	CFIStatus   Status = "CFI"   // Call for images
)

// All report provenance tags.
const (
	ReportSource SourceType = "report" // Per-document markdown source
	OtherSource  SourceType = "other"  // Bulk others.yml source
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All sort kinds supported.
const (
	FieldSort       SortKind = "field"        // Order by a named field and direction
	VendorFirstSort SortKind = "vendor-first" // Recognized vendors first, then product ascending
)

// All generic sort fields.
const (
	ProductField SortField = "product"
	VendorField  SortField = "vendor"
	SysField     SortField = "sys"
	BoardField   SortField = "board"
	DateField    SortField = "date"
)

// AllStatuses returns every status in display order.
var AllStatuses = []Status{GoodStatus, BasicStatus, CFHStatus, CFTStatus, WIPStatus, CFIStatus}

// ValidStatuses lists all valid report statuses.
var ValidStatuses = map[Status]struct{}{
	GoodStatus:  {},
	BasicStatus: {},
	CFHStatus:   {},
	CFTStatus:   {},
	WIPStatus:   {},
	CFIStatus:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// NotSpecified is the placeholder for absent free-text board fields.
const NotSpecified = "Not specified"

// Metadata category identifiers with special load-time handling.
const (
	LinuxCategory      = "linux"
	CustomizedCategory = "customized" // merged into linux at load time
	ArchesCategory     = "arches"     // dropped as unused
)
