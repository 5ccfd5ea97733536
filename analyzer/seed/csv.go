package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ResumeRow is a single record from the resume dataset CSV.
type ResumeRow struct {
	ID       string
	Text     string
	Category string
}

// ReadResumeCSV parses the dataset CSV. The expected header carries at least
// ID, Resume_str and Category columns (the Kaggle resume dataset layout);
// column order is taken from the header, extra columns are ignored.
func ReadResumeCSV(r io.Reader) ([]ResumeRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, validated below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	idCol, ok := idx["ID"]
	if !ok {
		return nil, fmt.Errorf("csv header missing ID column")
	}
	textCol, ok := idx["Resume_str"]
	if !ok {
		return nil, fmt.Errorf("csv header missing Resume_str column")
	}
	categoryCol, ok := idx["Category"]
	if !ok {
		return nil, fmt.Errorf("csv header missing Category column")
	}

	var rows []ResumeRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		if len(record) <= idCol || len(record) <= categoryCol {
			return nil, fmt.Errorf("csv line %d: too few columns", line)
		}

		row := ResumeRow{
			ID:       strings.TrimSpace(record[idCol]),
			Category: strings.TrimSpace(record[categoryCol]),
		}
		if textCol < len(record) {
			row.Text = record[textCol]
		}
		if row.ID == "" {
			return nil, fmt.Errorf("csv line %d: empty ID", line)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
