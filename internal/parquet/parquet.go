// Package parquet provides data structures and functions for exporting
// compatibility reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/panglars/VeRForTe/schema"
)

// ReportRow is the flat, analytics-friendly projection of an enriched
// report. The Parquet schema is inferred from the struct tags.
type ReportRow struct {
	// BoardID is the board's directory name, its unique identifier
	BoardID string `parquet:"board_id,snappy"`

	// BoardVendor is the board manufacturer
	BoardVendor string `parquet:"board_vendor,snappy"`

	// BoardProduct is the board's display name
	BoardProduct string `parquet:"board_product,snappy"`

	// BoardCPU is the CPU model
	BoardCPU string `parquet:"board_cpu,snappy"`

	// Sys is the raw system identifier
	Sys string `parquet:"sys,snappy"`

	// SystemName is the resolved display name
	SystemName string `parquet:"system_name,snappy"`

	// SysVer is the system version (nullable)
	SysVer *string `parquet:"sys_ver,optional,snappy"`

	// SysVar is the variant identifier (nullable)
	SysVar *string `parquet:"sys_var,optional,snappy"`

	// Status is the support status grade
	Status string `parquet:"status,snappy"`

	// LastUpdate is the report's update date (nullable)
	LastUpdate *time.Time `parquet:"last_update,optional,snappy"`

	// Source tags where the record came from
	Source string `parquet:"source,snappy"`

	// FileName is the backing document name without extension (nullable)
	FileName *string `parquet:"file_name,optional,snappy"`
}

// WriteReportsParquet writes a slice of ReportRow structs to a Parquet file.
func WriteReportsParquet(rows []ReportRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ReportRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertEnrichedReports converts enriched reports to ReportRow for Parquet export.
func ConvertEnrichedReports(reports []schema.EnrichedReport) []ReportRow {
	rows := make([]ReportRow, len(reports))
	for i, r := range reports {
		rows[i] = ReportRow{
			BoardID:      r.BoardID,
			BoardVendor:  r.BoardVendor,
			BoardProduct: r.BoardProduct,
			BoardCPU:     r.BoardCPU,
			Sys:          r.Sys,
			SystemName:   r.SystemName,
			SysVer:       optional(r.SysVer),
			SysVar:       optional(r.SysVar),
			Status:       string(r.Status),
			LastUpdate:   r.LastUpdate,
			Source:       string(r.Source),
			FileName:     optional(r.FileName),
		}
	}
	return rows
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
