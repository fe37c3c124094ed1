package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

const (
	// ExportFilename is the suggested name of the downloaded file.
	ExportFilename = "export.csv"

	// ContentTypeCSV is the MIME type of the CSV payload.
	ContentTypeCSV = "text/csv"
)

// Artifact is an export payload ready to be offered as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportFunc produces an export artifact from the full derived sequence.
// It replaces the CSV exporter when set in Options.OnExport.
type ExportFunc func(records []Record, columns []Column) (Artifact, error)

// ToCSV serializes records as CSV: one header line of column headers, then
// one line per record with the raw value at each column key. Renderers are
// ignored. Falsy values (nil, "", false, numeric zero) become empty fields.
// Fields containing commas, quotes or newlines are quoted.
func ToCSV(records []Record, columns []Column) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	line := make([]string, len(columns))
	for n, r := range records {
		for i, col := range columns {
			line[i] = exportValue(r[col.Key])
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", n+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportValue(v any) string {
	if isFalsy(v) {
		return ""
	}
	return Coerce(v)
}

// CSVArtifact wraps ToCSV output as an export.csv download.
func CSVArtifact(records []Record, columns []Column) (Artifact, error) {
	body, err := ToCSV(records, columns)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:    ExportFilename,
		ContentType: ContentTypeCSV,
		Body:        body,
	}, nil
}

// Export derives the full filtered and sorted sequence for state (ignoring
// the current page) and hands it to opts.OnExport, or to the CSV exporter
// when no override is configured.
func Export(records []Record, columns []Column, state ViewState, opts Options) (Artifact, error) {
	derived := Derive(records, columns, state)

	export := opts.OnExport
	if export == nil {
		export = CSVArtifact
	}
	return export(derived, columns)
}
