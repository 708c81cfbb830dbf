package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		NewDiscreteColumn("outlook", []string{"sunny", "rainy"}),
		NewContinuousColumn("temperature"),
		NewDiscreteColumn("play", []string{"yes", "no"}),
	}
}

func TestNewSchema(t *testing.T) {
	schema, err := NewSchema(testColumns(), "play")
	require.NoError(t, err)

	columns := schema.Columns()
	require.Len(t, columns, 2)
	assert.Equal(t, "outlook", columns[0].Name())
	assert.Equal(t, "temperature", columns[1].Name())
	require.NotNil(t, schema.Label())
	assert.Equal(t, "play", schema.Label().Name())

	i, ok := schema.ColumnIndex("temperature")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = schema.ColumnIndex("play")
	assert.False(t, ok, "the label column should not be a feature column")
	_, ok = schema.ColumnIndex("pressure")
	assert.False(t, ok)
}

func TestNewSchemaWithoutLabel(t *testing.T) {
	schema, err := NewSchema(testColumns(), "")
	require.NoError(t, err)
	assert.Len(t, schema.Columns(), 3)
	assert.Nil(t, schema.Label())
}

func TestNewSchemaErrors(t *testing.T) {
	_, err := NewSchema(testColumns(), "pressure")
	assert.Error(t, err, "unknown label column")

	_, err = NewSchema([]Column{
		NewContinuousColumn("x"),
		NewDiscreteColumn("x", []string{"a"}),
	}, "")
	assert.Error(t, err, "duplicate column name")
}

func TestSchemaRow(t *testing.T) {
	schema, err := NewSchema(testColumns(), "play")
	require.NoError(t, err)

	row, label, err := schema.Row(map[string]Value{
		"outlook":     "sunny",
		"temperature": 30,
		"play":        "no",
	})
	require.NoError(t, err)
	assert.Equal(t, []Value{"sunny", 30.0}, row, "integer values should widen to float64")
	assert.Equal(t, "no", label)

	row, label, err = schema.Row(map[string]Value{"temperature": 15.5})
	require.NoError(t, err)
	assert.Equal(t, []Value{nil, 15.5}, row)
	assert.Nil(t, label)

	_, _, err = schema.Row(map[string]Value{"outlook": "cloudy"})
	assert.Error(t, err, "value outside the discrete column's set")
	_, _, err = schema.Row(map[string]Value{"temperature": "cold"})
	assert.Error(t, err, "non-numeric value for a continuous column")
	_, _, err = schema.Row(map[string]Value{"play": 3.0})
	assert.Error(t, err, "non-string label for a discrete label column")
}

func TestNumber(t *testing.T) {
	for _, v := range []Value{1.5, float32(1.5), 1, int32(1), int64(1)} {
		n, ok := Number(v)
		assert.True(t, ok, "%T", v)
		assert.NotZero(t, n)
	}
	_, ok := Number("1.5")
	assert.False(t, ok)
	_, ok = Number(nil)
	assert.False(t, ok)
}
