/*
Package mongodataset reads datasets from a MongoDB backend.

A samples collection holds one document per sample, keyed by the
schema's column names.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const samplesCollectionName = "samples"

/*
Read takes a context, a MongoDB session and a schema and returns the
dataset read from the samples collection on the session's default
database, or an error. Fields absent from a document come out as
missing observations; documents without the schema's label field still
produce a labeled dataset with a missing label.
*/
func Read(ctx context.Context, session *mgo.Session, schema *feature.Schema) (dataset.Dataset, error) {
	iter := session.DB("").C(samplesCollectionName).Find(nil).Iter()
	defer iter.Close()
	var rows []dataset.Row
	var labels []feature.Value
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make(map[string]feature.Value, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			values[k] = v
		}
		row, label, err := schema.Row(values)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if schema.Label() != nil {
			labels = append(labels, label)
		}
		doc = bson.M{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterating over samples collection: %v", err)
	}
	return dataset.New(rows, labels)
}
