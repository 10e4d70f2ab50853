package Ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"MissionControl/Models"
)

var exportHeader = []string{"ID", "Task", "Assignee", "Category", "Deadline", "Status", "Created", "LastUpdated"}

func exportRow(a Models.Assignment) []string {
	return []string{a.TaskID, a.TaskTitle, a.AssignedTo, a.Category, a.DueDate, a.Status, a.AssignedDate, a.LastUpdated}
}

// ExportCSV serializes the full, unfiltered record set. Fields containing the
// delimiter are quoted. Returns nil when the ledger is empty.
func (s *Synchronizer) ExportCSV() []byte {
	s.mu.Lock()
	snapshot := make([]Models.Assignment, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(exportHeader)
	for _, a := range snapshot {
		w.Write(exportRow(a))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("ledger export: csv write failed: %v", err)
		return nil
	}
	return buf.Bytes()
}

// ExportXLSX renders the same export as a spreadsheet. Returns nil when the
// ledger is empty.
func (s *Synchronizer) ExportXLSX() ([]byte, error) {
	s.mu.Lock()
	snapshot := make([]Models.Assignment, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, a := range snapshot {
		row := exportRow(a)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName builds the download name for a ledger export.
func ExportFileName(now time.Time, ext string) string {
	return fmt.Sprintf("LEDGER_EXPORT_%s.%s", now.Format("2006-01-02"), ext)
}
