package domain

// Progress status classifications.
const (
	StatusGain    = "gain"
	StatusLoss    = "loss"
	StatusNeutral = "neutral"
)

// ProgressEntry is one row of the progress analysis: how an exercise
// changed between its earliest and latest recorded workout.
type ProgressEntry struct {
	Exercise     string  `json:"exercise"`
	WeightChange float64 `json:"weightChange"`
	RepsChange   int     `json:"repsChange"`
	Status       string  `json:"status"`
}

// RepPoint is one workout's rep counts for a single exercise, the data
// behind the per-exercise history chart. Only the first three sets are
// charted; missing sets count as zero.
type RepPoint struct {
	Timestamp int64 `json:"timestamp"`
	Set1      int   `json:"set1"`
	Set2      int   `json:"set2"`
	Set3      int   `json:"set3"`
}
