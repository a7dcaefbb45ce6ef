package domain

import (
	"strconv"
	"strings"
)

// Set is one weight/reps pair within an exercise. Weight is kept as the raw
// string the user typed (kilograms): "20" and "20.0" are different values,
// and "has the weight changed" checks compare strings, not numbers.
type Set struct {
	Weight string `json:"weight" bson:"weight" firestore:"weight"`
	Reps   int    `json:"reps" bson:"reps" firestore:"reps"`
}

// WeightValue parses the weight for arithmetic. Unparseable weights count
// as zero.
func (s Set) WeightValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.Weight), 64)
	if err != nil {
		return 0
	}
	return v
}

// Exercise is a named movement with an ordered sequence of sets. Order is
// meaningful and preserved through reordering.
type Exercise struct {
	Name string `json:"name" bson:"name" firestore:"name"`
	Sets []Set  `json:"sets" bson:"sets" firestore:"sets"`
}

// MaxReps returns the highest rep count across the exercise's sets.
func (e Exercise) MaxReps() int {
	max := 0
	for _, s := range e.Sets {
		if s.Reps > max {
			max = s.Reps
		}
	}
	return max
}

// uniqueWeights returns the distinct weight strings in first-seen order.
func uniqueWeights(sets []Set) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range sets {
		if !seen[s.Weight] {
			seen[s.Weight] = true
			out = append(out, s.Weight)
		}
	}
	return out
}

// WeightDisplay formats the exercise's weights for display: the distinct
// weight strings in first-seen order joined by "/" (e.g. "9/10").
func (e Exercise) WeightDisplay() string {
	return strings.Join(uniqueWeights(e.Sets), "/")
}

// RepsDisplay formats the exercise's reps for display. With a single weight
// across all sets the reps appear as a plain sequence ("15 8 7"). With more
// than one weight, sets are paired by index parity (positions 2k and 2k+1)
// and each pair rendered as "repsA/repsB" ("18/15 8/7"); a trailing
// unpaired set is shown alone.
func (e Exercise) RepsDisplay() string {
	sets := e.Sets
	if len(sets) == 0 {
		return ""
	}

	var parts []string
	if len(uniqueWeights(sets)) <= 1 {
		for _, s := range sets {
			parts = append(parts, strconv.Itoa(s.Reps))
		}
		return strings.Join(parts, " ")
	}

	for i := 0; i < len(sets); i += 2 {
		if i+1 < len(sets) {
			parts = append(parts, strconv.Itoa(sets[i].Reps)+"/"+strconv.Itoa(sets[i+1].Reps))
		} else {
			parts = append(parts, strconv.Itoa(sets[i].Reps))
		}
	}
	return strings.Join(parts, " ")
}
