package stock

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

type seedStore interface {
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, records []models.StockRecord) error
}

// Seed populates stock_data on first boot. An already-populated table is
// left untouched. When the CSV cannot be read a small built-in sample is
// loaded instead so the estimator always has rows to work against.
func Seed(ctx context.Context, store seedStore, csvPath string, logg *logger.Logger) error {
	count, err := store.Count(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count stock rows")
	}
	if count > 0 {
		return nil
	}

	records, err := loadCSV(csvPath)
	if err != nil {
		if logg != nil {
			logCtx := logg.WithFields(ctx, map[string]any{"path": csvPath, "reason": err.Error()})
			logg.Warn(logCtx, "stock.seed.csv_unavailable")
		}
		records = sampleRecords()
	}

	if err := store.BulkInsert(ctx, records); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert stock rows")
	}

	if logg != nil {
		logCtx := logg.WithField(ctx, "rows", len(records))
		logg.Info(logCtx, "stock.seed.loaded")
	}
	return nil
}

// loadCSV parses the dataset using its header row, so column order in the
// file does not matter.
func loadCSV(path string) ([]models.StockRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var records []models.StockRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, models.StockRecord{
			Type:      field("TYP"),
			DateCode:  field("DTP"),
			Packet:    field("PKT"),
			Grade:     field("GRD"),
			Finish:    field("FIN"),
			Thickness: field("THK"),
			Width:     field("WIDT"),
			Length:    field("LNGT"),
			Weight:    field("PWT"),
			Quality:   field("QLY"),
			Edge:      field("EDGE"),
			ASP:       field("ASP"),
			HRC:       field("HRC1"),
			BL:        field("BL"),
			SAL:       field("SAL"),
			Store:     field("STORE"),
			Nickel:    field("NICKEL"),
			CoilNo:    field("COILNO"),
		})
	}
	return records, nil
}

// sampleRecords mirrors the handful of rows the frontend was developed
// against. Grades 201 and 316 cover the main estimator bands.
func sampleRecords() []models.StockRecord {
	return []models.StockRecord{
		{Type: "C", DateCode: "04/06/2021", Packet: "FB81774", Grade: "201", Finish: "2D", Thickness: "1", Width: "1250", Weight: "0.4", Quality: "S", Edge: "M", ASP: "SSP", HRC: "122738", BL: "FALSE", SAL: "TRUE", Nickel: "3.55", CoilNo: "122738"},
		{Type: "C", DateCode: "10/08/2014", Packet: "FA68412", Grade: "201", Finish: "2D", Thickness: "2", Width: "1250", Weight: "1.016", Quality: "P", Edge: "M", ASP: "SSP", HRC: "121096 B", BL: "FALSE", SAL: "TRUE", Nickel: "3.57", CoilNo: "121096 B"},
		{Type: "C", DateCode: "10/08/2014", Packet: "FA68413", Grade: "201", Finish: "2D", Thickness: "2", Width: "1250", Weight: "1.365", Quality: "P", Edge: "M", ASP: "SSP", HRC: "121096 B", BL: "FALSE", SAL: "REMOTE HRC", Nickel: "3.57", CoilNo: "121096 B"},
		{Type: "C", DateCode: "10/06/2021", Packet: "FB82000", Grade: "201", Finish: "2D", Thickness: "2", Width: "1250", Weight: "0.972", Quality: "C", Edge: "M", ASP: "SSP", HRC: "121100", BL: "FALSE", SAL: "HRC CRM", Store: "Store Stock", Nickel: "3.57", CoilNo: "121100"},
		{Type: "C", DateCode: "24/02/2024", Packet: "FC22581", Grade: "316", Finish: "2D", Thickness: "0.3", Width: "1250", Weight: "2.159", Quality: "P", Edge: "M", ASP: "SSP", HRC: "219930", BL: "FALSE", SAL: "HRCS", Nickel: "1.5", CoilNo: "219930"},
	}
}
