package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/amnamine/djiblistore/core"
)

// tableHeader is the persisted column layout of the training table.
var tableHeader = []string{
	"product_id", "product_name", "category", "description",
	"price", "user_query", "relevance_label",
}

// WriteTable writes the training table as CSV with a header row.
func WriteTable(w io.Writer, rows []core.TrainingExample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return fmt.Errorf("writing training table header: %w", err)
	}

	record := make([]string, len(tableHeader))
	for i := range rows {
		row := &rows[i]
		record[0] = strconv.FormatUint(uint64(row.ProductId), 10)
		record[1] = row.ProductName
		record[2] = string(row.Category)
		record[3] = row.Description
		record[4] = row.Price
		record[5] = row.Query
		record[6] = strconv.Itoa(row.Label)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing training row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTable parses a training table written by WriteTable. Rows that fail
// validation are rejected: a corrupt table must not silently train a model.
func ReadTable(r io.Reader) ([]core.TrainingExample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(tableHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading training table header: %w", err)
	}
	for i, col := range tableHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected training table column %d: got %q, want %q", i, header[i], col)
		}
	}

	var rows []core.TrainingExample
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading training table line %d: %w", line, err)
		}

		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("training table line %d: bad product id %q: %w", line, record[0], err)
		}
		label, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, fmt.Errorf("training table line %d: bad label %q: %w", line, record[6], err)
		}

		row := core.TrainingExample{
			ProductId:   core.ID(id),
			ProductName: record[1],
			Category:    core.Category(record[2]),
			Description: record[3],
			Price:       record[4],
			Query:       record[5],
			Label:       label,
		}
		if err := core.ValidateTrainingExample(&row); err != nil {
			return nil, fmt.Errorf("training table line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
