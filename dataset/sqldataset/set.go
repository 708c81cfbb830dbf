package sqldataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
)

/*
Adapter is an interface for the database-specific part of reading a
samples table, leaving dialect concerns like identifier quoting to
implementations.
*/
type Adapter interface {
	// ColumnName takes the name of a schema column and returns the
	// database column name to query for it, or an error if the name
	// cannot be used on the backend.
	ColumnName(name string) (string, error)
	// QuerySamples takes a context and a slice of database column
	// names and returns the rows of the samples table with those
	// columns, in insertion order, or an error.
	QuerySamples(ctx context.Context, columns []string) (*sql.Rows, error)
	// Close closes the adapter, freeing the underlying database
	// resources.
	Close() error
}

/*
Read takes a context, an adapter and a schema and returns the dataset
read from the adapter's samples table or an error. The table must have
one column per schema column, label included; NULL database values come
out as missing observations.
*/
func Read(ctx context.Context, adapter Adapter, schema *feature.Schema) (dataset.Dataset, error) {
	columns := append([]feature.Column{}, schema.Columns()...)
	if schema.Label() != nil {
		columns = append(columns, schema.Label())
	}
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		n, err := adapter.ColumnName(c.Name())
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	sqlRows, err := adapter.QuerySamples(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer sqlRows.Close()
	var rows []dataset.Row
	var labels []feature.Value
	for sqlRows.Next() {
		values, err := scanValues(sqlRows, columns)
		if err != nil {
			return nil, err
		}
		row, label, err := schema.Row(values)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if schema.Label() != nil {
			labels = append(labels, label)
		}
	}
	if err := sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating over samples: %v", err)
	}
	return dataset.New(rows, labels)
}

func scanValues(sqlRows *sql.Rows, columns []feature.Column) (map[string]feature.Value, error) {
	dest := make([]interface{}, len(columns))
	for i, c := range columns {
		if _, ok := c.(*feature.ContinuousColumn); ok {
			dest[i] = &sql.NullFloat64{}
		} else {
			dest[i] = &sql.NullString{}
		}
	}
	if err := sqlRows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning sample: %v", err)
	}
	values := make(map[string]feature.Value, len(columns))
	for i, c := range columns {
		switch v := dest[i].(type) {
		case *sql.NullFloat64:
			if v.Valid {
				values[c.Name()] = v.Float64
			}
		case *sql.NullString:
			if v.Valid {
				values[c.Name()] = v.String
			}
		}
	}
	return values, nil
}
