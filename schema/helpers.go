package schema

import (
	"fmt"
	"strings"
)

// NormalizeStatus trims and uppercases a raw status value. It does not
// check membership in the valid set; that is the validator's job.
func NormalizeStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsValidStatus reports whether s is one of the enumerated grades.
func IsValidStatus(s Status) bool {
	_, ok := ValidStatuses[s]
	return ok
}

// DisplayName resolves a system identifier to its display name, falling
// back to the raw identifier when the metadata has no entry for it.
func (m *SystemMetadata) DisplayName(sysID string) string {
	if m == nil {
		return sysID
	}
	if name, ok := m.Names[sysID]; ok && name != "" {
		return name
	}
	return sysID
}

// PagePath returns the site-relative page path for a document-sourced
// report, or an empty string for bulk-sourced entries which have no
// backing document to link to.
func (r *Report) PagePath() string {
	if r.FileName == "" {
		return ""
	}
	return fmt.Sprintf("reports/%s-%s-%s", r.BoardID, r.Sys, r.FileName)
}

// SupportedSystemNames returns the display names of every system this
// board has at least one report for. Used as a searchable field so a
// query like "ubuntu" matches boards that support Ubuntu.
func (b *Board) SupportedSystemNames(meta *SystemMetadata) []string {
	names := make([]string, 0, len(b.Systems))
	for sysID := range b.Systems {
		names = append(names, meta.DisplayName(sysID))
	}
	return names
}

// HasDate reports whether the report carries a recoverable update date.
// Bulk-sourced entries and documents without a last_update field are the
// same "no date" case.
func (r *Report) HasDate() bool {
	return r.LastUpdate != nil
}
