package feature

import "fmt"

/*
Schema describes the shape of a tabular dataset: an ordered slice of
feature columns plus, optionally, a label column kept apart from the
feature vector. Rows of a dataset are positional, so the schema is the
single place where column names are resolved to indexes.
*/
type Schema struct {
	columns []Column
	label   Column
}

/*
NewSchema takes an ordered slice of columns and the name of the label
column among them and returns a schema in which the named column has
been set apart as the label. An empty labelName returns an unlabeled
schema. An error is returned if the label names no column or if two
columns share a name.
*/
func NewSchema(columns []Column, labelName string) (*Schema, error) {
	seen := make(map[string]bool)
	var label Column
	features := make([]Column, 0, len(columns))
	for _, c := range columns {
		if seen[c.Name()] {
			return nil, fmt.Errorf("schema declares column %s twice", c.Name())
		}
		seen[c.Name()] = true
		if labelName != "" && c.Name() == labelName {
			label = c
			continue
		}
		features = append(features, c)
	}
	if labelName != "" && label == nil {
		return nil, fmt.Errorf("label column %s is not declared in the schema", labelName)
	}
	return &Schema{columns: features, label: label}, nil
}

/*
Columns returns the ordered feature columns of the schema, excluding
the label column.
*/
func (s *Schema) Columns() []Column {
	return s.columns
}

/*
Label returns the label column of the schema, or nil for an
unlabeled schema.
*/
func (s *Schema) Label() Column {
	return s.label
}

/*
ColumnIndex takes a column name and returns the index of the feature
column with that name and a boolean indicating whether the schema
declares it.
*/
func (s *Schema) ColumnIndex(name string) (int, bool) {
	for i, c := range s.columns {
		if c.Name() == name {
			return i, true
		}
	}
	return 0, false
}

/*
Row takes a map of column names to values and returns the positional
feature vector for the schema plus the label value, validating every
value against its column. Missing columns are kept as nil values.
Numeric values for continuous columns are widened to float64.
An error is returned when a value is not valid for its column.
*/
func (s *Schema) Row(values map[string]Value) ([]Value, Value, error) {
	row := make([]Value, len(s.columns))
	for i, c := range s.columns {
		v, err := s.columnValue(c, values[c.Name()])
		if err != nil {
			return nil, nil, err
		}
		row[i] = v
	}
	if s.label == nil {
		return row, nil, nil
	}
	label, err := s.columnValue(s.label, values[s.label.Name()])
	if err != nil {
		return nil, nil, err
	}
	return row, label, nil
}

func (s *Schema) columnValue(c Column, v Value) (Value, error) {
	if v == nil {
		return nil, nil
	}
	if _, ok := c.(*ContinuousColumn); ok {
		n, ok := Number(v)
		if !ok {
			return nil, fmt.Errorf("continuous column %s expects numeric value, got %T value", c.Name(), v)
		}
		v = n
	}
	if ok, err := c.Valid(v); !ok {
		return nil, err
	}
	return v, nil
}
