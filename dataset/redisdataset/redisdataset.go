/*
Package redisdataset reads datasets from a Redis backend.

Samples live in a Redis list whose items are JSON objects keyed by the
schema's column names.
*/
package redisdataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	redis "gopkg.in/redis.v5"
)

/*
Read takes a context, a redis client, the key of the list holding the
samples and a schema and returns the dataset read from the list or an
error. JSON null fields and fields absent from an item come out as
missing observations.
*/
func Read(ctx context.Context, rc *redis.Client, key string, schema *feature.Schema) (dataset.Dataset, error) {
	items, err := rc.LRange(key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading samples from redis list %q: %v", key, err)
	}
	var rows []dataset.Row
	var labels []feature.Value
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make(map[string]feature.Value)
		if err := json.Unmarshal([]byte(item), &values); err != nil {
			return nil, fmt.Errorf("decoding sample %d from redis list %q: %v", i, key, err)
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
	return dataset.New(rows, labels)
}
