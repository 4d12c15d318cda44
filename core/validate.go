package core

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

var reportValidator = validator.New(validator.WithRequiredStructEnabled())

// reportRecord is the validatable projection of a merged report.
type reportRecord struct {
	Sys     string `validate:"required"`
	BoardID string `validate:"required"`
	Status  string `validate:"required,oneof=GOOD BASIC CFH CFT WIP CFI"`
}

// validReports drops every report that fails structural validation.
// Each rejection is logged with enough context to find the offending
// document; the rest of the list is unaffected.
func validReports(reports []schema.Report) []schema.Report {
	valid := make([]schema.Report, 0, len(reports))
	for _, r := range reports {
		rec := reportRecord{Sys: r.Sys, BoardID: r.BoardID, Status: string(r.Status)}
		if err := reportValidator.Struct(&rec); err != nil {
			contract.LogWarn(fmt.Sprintf("dropping report %s/%s (%s)", r.BoardID, r.Sys, r.Source), err)
			continue
		}
		valid = append(valid, r)
	}
	return valid
}

// consistencyIssues cross-checks the aggregated result and returns a
// human-readable description of every discrepancy found. Issues are
// reported, never repaired: an orphan report stays in the flat list.
func consistencyIssues(data *schema.SiteData) []string {
	var issues []string

	orphans := map[string]int{}
	for _, r := range data.AllReports {
		if _, ok := data.Boards[r.BoardID]; !ok {
			orphans[r.BoardID]++
		}
	}
	for _, id := range sortedKeys(orphans) {
		issues = append(issues, fmt.Sprintf("%d report(s) reference unknown board %q", orphans[id], id))
	}

	// Recount per-system reports from the flat list and compare against
	// the aggregated index. The index is keyed by the exact sys value, so
	// the recount matches exactly too.
	recount := map[string]int{}
	for _, r := range data.AllReports {
		recount[r.Sys]++
	}
	for _, id := range sortedKeys(data.Systems) {
		sys := data.Systems[id]
		if want := recount[id]; want != len(sys.Reports) {
			issues = append(issues, fmt.Sprintf("system %q indexes %d report(s), flat list has %d", id, len(sys.Reports), want))
		}
	}

	return issues
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
