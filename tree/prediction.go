package tree

import (
	"fmt"
	"strings"

	"github.com/MacGruber91/ML/feature"
)

/*
Prediction represents the outcome a leaf predicts for the samples that
reach it: the predicted value, the number of training samples the leaf
was built from, and, for classification leaves, the probability of
every class observed in those samples.
*/
type Prediction struct {
	value         feature.Value
	weight        int
	probabilities map[string]float64
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build
a prediction based on an empty dataset.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty dataset")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPrediction takes a predicted value and an integer with the number of
samples in the dataset from which the value was computed and returns a
prediction representing them. Termination strategies predicting a plain
outcome, like the mean label of a regression leaf, use this constructor.
*/
func NewPrediction(value feature.Value, weight int) *Prediction {
	return &Prediction{value: value, weight: weight}
}

/*
NewClassPrediction takes a map of class values to their probabilities
and an integer with the number of samples those probabilities were
computed from, and returns a prediction whose value is the most
probable class. An error is returned for a zero weight.
*/
func NewClassPrediction(probabilities map[string]float64, weight int) (*Prediction, error) {
	if weight == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	var value string
	var prob float64
	for k, v := range probabilities {
		if v > prob {
			value = k
			prob = v
		}
	}
	return &Prediction{value: value, weight: weight, probabilities: probabilities}, nil
}

/*
Value returns the predicted value.
*/
func (p *Prediction) Value() feature.Value {
	return p.value
}

/*
Weight returns the weight of the prediction: an int equal to the number
of samples in the dataset from which the prediction was made.
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
Probabilities returns a map of class values to float64 probabilities,
nil for predictions without per-class statistics.
*/
func (p *Prediction) Probabilities() map[string]float64 {
	return p.probabilities
}

/*
ProbabilityOf takes a class value and returns the float64 probability
of that value according to the prediction.
*/
func (p *Prediction) ProbabilityOf(value string) float64 {
	return p.probabilities[value]
}

func (p *Prediction) String() string {
	if p.probabilities != nil {
		return strings.Replace(fmt.Sprintf("%v", p.probabilities), "map", "", 1)
	}
	return fmt.Sprintf("%v (%d samples)", p.value, p.weight)
}
