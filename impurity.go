package ml

import (
	"fmt"
	"math"

	"github.com/MacGruber91/ML/feature"
)

/*
Impurity measures the heterogeneity of a group of labels. The split
search maximizes the weighted decrease of this measure, so any
function with this signature can drive the learner.
*/
type Impurity func(labels []feature.Value) float64

/*
Gini returns the Gini impurity of the given labels: the probability of
mislabeling a sample drawn from the group when labeling it at random
according to the label distribution of the group.
*/
func Gini(labels []feature.Value) float64 {
	counts, total := countLabels(labels)
	if total == 0 {
		return 0
	}
	result := 1.0
	for _, c := range counts {
		p := c / total
		result -= p * p
	}
	return result
}

/*
Entropy returns the entropy of the given labels: a measure of the
disinformation we have on the classes of the samples they belong to.
*/
func Entropy(labels []feature.Value) float64 {
	counts, total := countLabels(labels)
	if total == 0 {
		return 0
	}
	var result float64
	for _, c := range counts {
		p := c / total
		result -= p * math.Log(p)
	}
	return result
}

/*
Variance returns the mean squared deviation of the numeric labels in
the group, the impurity measure of regression trees. Labels without a
numeric value are ignored.
*/
func Variance(labels []feature.Value) float64 {
	var sum, count float64
	for _, l := range labels {
		if v, ok := feature.Number(l); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	mean := sum / count
	var result float64
	for _, l := range labels {
		if v, ok := feature.Number(l); ok {
			result += (v - mean) * (v - mean)
		}
	}
	return result / count
}

func countLabels(labels []feature.Value) (map[string]float64, float64) {
	counts := make(map[string]float64)
	var total float64
	for _, l := range labels {
		if l == nil {
			continue
		}
		ls, ok := l.(string)
		if !ok {
			ls = fmt.Sprintf("%v", l)
		}
		counts[ls]++
		total++
	}
	return counts, total
}
