package feature

import "fmt"

/*
Value is a single observed value for a column: a float64 for
continuous columns or a string for discrete ones. A nil Value
represents a missing observation.
*/
type Value = interface{}

/*
Column represents a property observed for every row of a dataset
*/
type Column interface {
	Name() string
	Valid(Value) (bool, error)
}

/*
DiscreteColumn represents a property that can only take a value
among a finite set.
*/
type DiscreteColumn struct {
	name            string
	availableValues []string
}

/*
ContinuousColumn represents a property that can take a numeric value
*/
type ContinuousColumn struct {
	name string
}

/*
NewDiscreteColumn takes a name string and a slice of available value strings
and returns a discrete column with the given name and available values.
*/
func NewDiscreteColumn(name string, availableValues []string) *DiscreteColumn {
	return &DiscreteColumn{name, availableValues}
}

/*
NewContinuousColumn takes a name string and returns a continuous column with
the given name.
*/
func NewContinuousColumn(name string) *ContinuousColumn {
	return &ContinuousColumn{name}
}

/*
Name returns a string with the name of the column
*/
func (dc *DiscreteColumn) Name() string {
	return dc.name
}

/*
Valid receives a value and returns a boolean and an error. When the
value is included in the available values for the column, the method
returns true and nil. Otherwise it returns false and an error describing
the reason. A nil value counts as a missing observation and is valid.
*/
func (dc *DiscreteColumn) Valid(value Value) (bool, error) {
	if value == nil {
		return true, nil
	}
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("discrete column %s expects string value, got %T value", dc.Name(), value)
	}
	for _, av := range dc.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete column %s got unknown value %s", dc.Name(), vs)
}

/*
AvailableValues returns a string slice with the values available for the column
*/
func (dc *DiscreteColumn) AvailableValues() []string {
	return dc.availableValues
}

func (dc *DiscreteColumn) String() string {
	return dc.name
}

/*
Name returns a string with the name of the column
*/
func (cc *ContinuousColumn) Name() string {
	return cc.name
}

/*
Valid receives a value and returns a boolean and an error. When the
value is numeric it returns true and nil, otherwise it returns
false and an error describing the reason. A nil value counts as a
missing observation and is valid.
*/
func (cc *ContinuousColumn) Valid(value Value) (bool, error) {
	if value == nil {
		return true, nil
	}
	if _, ok := Number(value); !ok {
		return false, fmt.Errorf("continuous column %s expects numeric value, got %T value", cc.Name(), value)
	}
	return true, nil
}

func (cc *ContinuousColumn) String() string {
	return cc.name
}

/*
Number takes a value and returns its float64 representation and a
boolean indicating whether the value was numeric at all. Integer
values coming from backends that do not preserve float typing
(SQL drivers, BSON decoding) are widened to float64.
*/
func Number(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
