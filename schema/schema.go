// Package schema has the data model, constants and result shapes for all parts of verforte.
package schema

import "time"

// BoardMeta holds the front-matter metadata of a single board document.
// Dir doubles as the board's unique identifier.
type BoardMeta struct {
	Dir     string `json:"dir"`      // Unique ID, the board's directory name
	Vendor  string `json:"vendor"`   // Board manufacturer (required)
	Product string `json:"product"`  // Board name
	CPU     string `json:"cpu"`      // CPU model
	CPUCore string `json:"cpu_core"` // CPU core
	RAM     string `json:"ram"`      // Memory and flash information
}

// Report is a single compatibility test record for a (board, system) pair.
type Report struct {
	Sys        string     `json:"sys"`                   // System identifier
	SysVer     string     `json:"sys_ver,omitempty"`     // System version
	SysVar     string     `json:"sys_var,omitempty"`     // Variant identifier
	Status     Status     `json:"status"`                // Support status grade
	LastUpdate *time.Time `json:"last_update,omitempty"` // Nil when no date is recoverable
	BoardID    string     `json:"board_id"`              // Foreign key into BoardMeta.Dir
	Source     SourceType `json:"source"`                // Provenance tag
	FileName   string     `json:"file_name,omitempty"`   // Document name without extension; empty for bulk entries
}

// Board is a board with all of its reports grouped by system identifier.
type Board struct {
	ID      string              `json:"id"`
	Meta    BoardMeta           `json:"meta"`
	Systems map[string][]Report `json:"systems"`
}

// System is an operating system with all of its reports across boards.
type System struct {
	ID      string   `json:"id"`      // Raw system identifier, e.g. "ubuntu"
	Name    string   `json:"name"`    // Display name, e.g. "Ubuntu", falling back to ID
	Reports []Report `json:"reports"` // All reports for this system
}

// SystemEntry is one (id, display name) pair from the category metadata.
type SystemEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups system entries under a metadata category such as linux or bsd.
type Category struct {
	ID      string        `json:"id"`
	Systems []SystemEntry `json:"systems"`
}

// SystemMetadata is the parsed category metadata document. Categories keeps
// document order; Names is the flattened id to display-name lookup.
type SystemMetadata struct {
	Categories []Category        `json:"categories"`
	Names      map[string]string `json:"names"`
}

// SiteStatistics holds derived site-wide counts, computed once per load.
type SiteStatistics struct {
	TotalBoards       int                 `json:"total_boards"`
	TotalSystems      int                 `json:"total_systems"`
	TotalReports      int                 `json:"total_reports"`
	StatusCounts      map[Status]int      `json:"status_counts"`
	BoardsByVendor    map[string][]string `json:"boards_by_vendor"`
	SystemsByCategory map[string][]string `json:"systems_by_category"`
	LastUpdated       time.Time           `json:"last_updated"`
}

// SiteData is the fully aggregated result exposed to all consumers.
// Callers must treat it as immutable once published.
type SiteData struct {
	Boards     map[string]*Board  `json:"boards"`
	Systems    map[string]*System `json:"systems"`
	AllReports []Report           `json:"all_reports"`
	Metadata   *SystemMetadata    `json:"metadata"`
	Statistics SiteStatistics     `json:"statistics"`
}

// EnrichedReport is a report joined with its board's metadata and the
// system display name, for list views and exports.
type EnrichedReport struct {
	Report
	BoardProduct string `json:"board_product"`
	BoardCPU     string `json:"board_cpu"`
	BoardVendor  string `json:"board_vendor"`
	SystemName   string `json:"system_name"`
}

// ReportFilter restricts a report list. Empty slices mean no restriction;
// the date range applies only when both ends are set.
type ReportFilter struct {
	CPUs     []string
	Vendors  []string
	Systems  []string
	Statuses []string
	From     *time.Time
	To       *time.Time
}

// CompareSelection restricts a matrix view to explicit board and system
// subsets. Empty selections mean no restriction.
type CompareSelection struct {
	Boards        []string
	Systems       []string
	HideIdentical bool // Only honored when at least two systems are selected
}

// MatrixRow is one board row of a compatibility matrix. Statuses is
// parallel to the owning category's system list; an empty status means
// no report exists for that (board, system) pair.
type MatrixRow struct {
	Board    BoardMeta `json:"board"`
	Statuses []Status  `json:"statuses"`
}

// MatrixCategory is the board-by-system status grid for one metadata category.
type MatrixCategory struct {
	ID      string        `json:"id"`
	Systems []SystemEntry `json:"systems"`
	Rows    []MatrixRow   `json:"rows"`
}

// DebugStats describes the lifecycle state of a site data store. This is a
// development aid, not part of the production contract.
type DebugStats struct {
	IsCached       bool       `json:"is_cached"`
	IsLoading      bool       `json:"is_loading"`
	CacheTimestamp *time.Time `json:"cache_timestamp,omitempty"`
	TotalBoards    int        `json:"total_boards"`
	TotalReports   int        `json:"total_reports"`
}
