package segments

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table column order is fixed; the header row is required.
var tableHeader = []string{"from_timestamp", "to_timestamp", "file", "short_description"}

// ReadTable parses a segment table from CSV. The "file" column is optional on
// input (the analysis collaborator does not assign chunk names).
func ReadTable(r io.Reader) ([]Segment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("segment table: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("segment table: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"from_timestamp", "to_timestamp"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("segment table: missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var segs []Segment
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("segment table: read row: %w", err)
		}
		segs = append(segs, Segment{
			Start:       field(rec, "from_timestamp"),
			End:         field(rec, "to_timestamp"),
			File:        field(rec, "file"),
			Description: field(rec, "short_description"),
		})
	}
	return segs, nil
}

// WriteTable writes segments as CSV with the full four-column header.
func WriteTable(w io.Writer, segs []Segment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return fmt.Errorf("segment table: write header: %w", err)
	}
	for _, s := range segs {
		if err := cw.Write([]string{s.Start, s.End, s.File, s.Description}); err != nil {
			return fmt.Errorf("segment table: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTableFile reads a segment table from path.
func ReadTableFile(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// WriteTableFile overwrites path with the given table.
func WriteTableFile(path string, segs []Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, segs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
