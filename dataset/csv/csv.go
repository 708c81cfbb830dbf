/*
Package csv reads and writes datasets as CSV streams.

The header row names the columns of the schema in any order; every
data row holds valid values for them, with '?' marking a missing
observation. Datasets read from a stream whose header lacks the
schema's label column come out unlabeled.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
)

const missingValue = "?"

/*
Read takes an io.Reader for a CSV stream and a schema and returns the
dataset parsed from the stream or an error.
*/
func Read(reader io.Reader, schema *feature.Schema) (dataset.Dataset, error) {
	var rows []dataset.Row
	var labels []feature.Value
	labeled := false
	err := ReadByRow(reader, schema, func(i int, row dataset.Row, label feature.Value, hasLabel bool) (bool, error) {
		rows = append(rows, row)
		if hasLabel {
			labeled = true
			labels = append(labels, label)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !labeled {
		labels = nil
	}
	return dataset.New(rows, labels)
}

/*
ReadByRow takes an io.Reader for a CSV stream, a schema and a lambda
function taking a row index, the parsed feature vector, its label and
a boolean telling whether the stream carries labels at all. It parses
the stream row by row and calls the lambda for each one; the lambda
returning false stops the parsing. An error is returned if the stream
cannot be read or a value cannot be parsed for its column.
*/
func ReadByRow(reader io.Reader, schema *feature.Schema, lambda func(int, dataset.Row, feature.Value, bool) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	positions, hasLabel, err := headerPositions(header, schema)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		row, label, err := parseRecord(record, header, positions, schema)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, row, label, hasLabel)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadFromFilePath takes a filepath string and a schema, opens the file
the filepath points to and uses Read to return the dataset parsed from
it or an error.
*/
func ReadFromFilePath(filepath string, schema *feature.Schema) (dataset.Dataset, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file %s: %v", filepath, err)
	}
	defer f.Close()
	s, err := Read(f, schema)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return s, err
}

/*
Write takes a context, an io.Writer, a schema and a dataset and writes
the dataset to the writer as CSV: a header row with the column names
followed by one record per row, labels in the schema's label column and
missing values as '?'.
*/
func Write(ctx context.Context, w io.Writer, schema *feature.Schema, s dataset.Dataset) error {
	rows, err := s.Rows(ctx)
	if err != nil {
		return err
	}
	labels, err := s.Labels(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(schema.Columns())+1)
	for _, c := range schema.Columns() {
		header = append(header, c.Name())
	}
	if labels != nil && schema.Label() != nil {
		header = append(header, schema.Label().Name())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range rows {
		record := make([]string, 0, len(header))
		for _, v := range row {
			record = append(record, formatValue(v))
		}
		if labels != nil && schema.Label() != nil {
			record = append(record, formatValue(labels[i]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func headerPositions(header []string, schema *feature.Schema) (map[string]int, bool, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, taken := positions[name]; taken {
			return nil, false, fmt.Errorf("header declares column %s twice", name)
		}
		positions[name] = i
	}
	for _, c := range schema.Columns() {
		if _, ok := positions[c.Name()]; !ok {
			return nil, false, fmt.Errorf("header is missing column %s", c.Name())
		}
	}
	hasLabel := false
	if schema.Label() != nil {
		_, hasLabel = positions[schema.Label().Name()]
	}
	return positions, hasLabel, nil
}

func parseRecord(record, header []string, positions map[string]int, schema *feature.Schema) (dataset.Row, feature.Value, error) {
	if len(record) != len(header) {
		return nil, nil, fmt.Errorf("record has %d values, header has %d columns", len(record), len(header))
	}
	values := make(map[string]feature.Value, len(schema.Columns())+1)
	columns := append([]feature.Column{}, schema.Columns()...)
	if schema.Label() != nil {
		columns = append(columns, schema.Label())
	}
	for _, c := range columns {
		pos, ok := positions[c.Name()]
		if !ok {
			continue
		}
		v, err := parseValue(c, record[pos])
		if err != nil {
			return nil, nil, err
		}
		values[c.Name()] = v
	}
	return schema.Row(values)
}

func parseValue(c feature.Column, raw string) (feature.Value, error) {
	if raw == missingValue {
		return nil, nil
	}
	if _, ok := c.(*feature.ContinuousColumn); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q for continuous column %s: %v", raw, c.Name(), err)
		}
		return v, nil
	}
	return raw, nil
}

func formatValue(v feature.Value) string {
	if v == nil {
		return missingValue
	}
	if n, ok := v.(float64); ok {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
