/*
Package yaml provides methods to parse feature.Schema specifications,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/MacGruber91/ML/feature"
	yaml "gopkg.in/yaml.v2"
)

type columnSpec struct {
	Name   string
	Kind   string
	Values []string
}

/*
ReadSchema takes a slice of bytes with a schema specification in YML and
returns the feature.Schema parsed from it or an error.
The YML is expected to be an object with a columns property and an optional
label property. The value for columns should be an ordered list of objects,
each with a name and either a kind of 'continuous' for continuous columns or
a values list of valid values for discrete columns. The column order in the
document is the column order of the dataset rows. The label property names
the column holding the value to learn; it may be omitted for schemas that
describe unlabeled data.
*/
func ReadSchema(md []byte) (*feature.Schema, error) {
	metadata := struct {
		Label   string
		Columns []columnSpec
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if len(metadata.Columns) == 0 {
		return nil, fmt.Errorf("metadata file has no column information")
	}
	columns := make([]feature.Column, 0, len(metadata.Columns))
	for _, cs := range metadata.Columns {
		if cs.Name == "" {
			return nil, fmt.Errorf("metadata file declares a column without a name")
		}
		switch {
		case len(cs.Values) > 0:
			columns = append(columns, feature.NewDiscreteColumn(cs.Name, cs.Values))
		case cs.Kind == "continuous" || cs.Kind == "":
			columns = append(columns, feature.NewContinuousColumn(cs.Name))
		default:
			return nil, fmt.Errorf("invalid kind %q for column %s", cs.Kind, cs.Name)
		}
	}
	return feature.NewSchema(columns, metadata.Label)
}

/*
ReadSchemaFromFile takes a filepath string, reads its contents and uses
ReadSchema to parse it and return the parsed feature.Schema or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadSchemaFromFile(filepath string) (*feature.Schema, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	s, err := ReadSchema(md)
	if err != nil {
		err = fmt.Errorf("parsing schema yml file %s: %v", filepath, err)
	}
	return s, err
}
