package yaml

import (
	"testing"

	"github.com/MacGruber91/ML/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherYML = `
label: play
columns:
  - name: outlook
    values: [sunny, overcast, rainy]
  - name: temperature
    kind: continuous
  - name: humidity
  - name: play
    values: ["yes", "no"]
`

func TestReadSchema(t *testing.T) {
	schema, err := ReadSchema([]byte(weatherYML))
	require.NoError(t, err)

	columns := schema.Columns()
	require.Len(t, columns, 3)
	assert.Equal(t, "outlook", columns[0].Name())
	assert.Equal(t, "temperature", columns[1].Name())
	assert.Equal(t, "humidity", columns[2].Name())

	outlook, ok := columns[0].(*feature.DiscreteColumn)
	require.True(t, ok)
	assert.Equal(t, []string{"sunny", "overcast", "rainy"}, outlook.AvailableValues())
	_, ok = columns[1].(*feature.ContinuousColumn)
	assert.True(t, ok, "columns with kind continuous should be continuous")
	_, ok = columns[2].(*feature.ContinuousColumn)
	assert.True(t, ok, "columns without kind or values should default to continuous")

	label := schema.Label()
	require.NotNil(t, label)
	assert.Equal(t, "play", label.Name())
}

func TestReadSchemaWithoutLabel(t *testing.T) {
	schema, err := ReadSchema([]byte("columns:\n  - name: x\n  - name: y\n"))
	require.NoError(t, err)
	assert.Nil(t, schema.Label())
	assert.Len(t, schema.Columns(), 2)
}

func TestReadSchemaErrors(t *testing.T) {
	for name, yml := range map[string]string{
		"not yml at all":  "@@@",
		"no columns":      "label: play\n",
		"unnamed column":  "columns:\n  - kind: continuous\n",
		"unknown kind":    "columns:\n  - name: x\n    kind: ordinal\n",
		"unknown label":   "label: play\ncolumns:\n  - name: x\n",
		"duplicate names": "columns:\n  - name: x\n  - name: x\n",
	} {
		_, err := ReadSchema([]byte(yml))
		assert.Error(t, err, name)
	}
}
