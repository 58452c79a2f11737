package scheduling

import (
	"math"
	"sort"
	"time"
)

// Weights of the three factors that make up a priority score
const (
	urgencyWeight    = 0.6
	difficultyWeight = 0.3
	durationWeight   = 0.1
)

// durationBaseline is the estimated duration at which the duration factor maxes out
const durationBaseline = 240 * time.Minute

// scoreEpsilon is the tolerance below which two scores count as tied
const scoreEpsilon = 0.1

// Score computes the priority score of a WorkItem at a fixed point in time.
// The result is a weighted sum of an urgency bucket, a difficulty factor and a
// duration factor, clamped to [0, 10]. An item missing its due date, difficulty
// or estimated duration scores 0 instead of failing the run.
func Score(item *WorkItem, currentTime time.Time) float64 {
	if item.DueAt.IsZero() || item.Difficulty == 0 || item.EstimatedDuration == 0 {
		return 0
	}

	hoursUntilDue := item.DueAt.Sub(currentTime).Hours()

	score := float64(urgencyBucket(hoursUntilDue))*urgencyWeight +
		difficultyFactor(item.Difficulty)*difficultyWeight +
		durationFactor(item.EstimatedDuration)*durationWeight

	return math.Min(math.Max(score, 0), 10)
}

// urgencyBucket maps hours until the due date onto a discrete urgency value
func urgencyBucket(hoursUntilDue float64) int {
	switch {
	case hoursUntilDue <= 0:
		return 10 // Overdue
	case hoursUntilDue <= 24:
		return 9 // Due within 24 hours
	case hoursUntilDue <= 72:
		return 7 // Due within 3 days
	case hoursUntilDue <= 168:
		return 5 // Due within a week
	case hoursUntilDue <= 720:
		return 3 // Due within a month
	default:
		return 1
	}
}

// difficultyFactor maps the 1-10 difficulty level onto a 0-3 factor
func difficultyFactor(difficulty int) float64 {
	return math.Min(float64(difficulty)/10, 1) * 3
}

// durationFactor maps the estimated duration onto a 0-2 factor
func durationFactor(estimatedDuration time.Duration) float64 {
	return math.Min(estimatedDuration.Minutes()/durationBaseline.Minutes(), 1) * 2
}

// LegacyScore is the ratio based scoring formula some older clients computed:
// (difficulty*importance*10 + max(1, 168/hoursUntilDue)) / estimatedDurationHours.
// It is unbounded and on a different scale than Score, which is canonical.
//
// Deprecated: kept only so historical scores can be reproduced; never used for
// ranking.
func LegacyScore(item *WorkItem, currentTime time.Time) float64 {
	if item.DueAt.IsZero() || item.EstimatedDuration <= 0 {
		return 0
	}

	hoursUntilDue := item.DueAt.Sub(currentTime).Hours()
	urgency := 1.0
	if hoursUntilDue > 0 {
		urgency = math.Max(1, 168/hoursUntilDue)
	}

	return (float64(item.Difficulty*item.Importance*10) + urgency) / item.EstimatedDuration.Hours()
}

// EnsureScores recomputes the priority score of every item whose scoring inputs
// are present, against one frozen current time
func EnsureScores(items []*WorkItem, currentTime time.Time) {
	for _, item := range items {
		item.PriorityScore = Score(item, currentTime)
	}
}

// SortByPriority ranks items by descending priority score; scores within
// scoreEpsilon of each other count as equal and fall back to the earlier due
// date, then to stable input order
func SortByPriority(items []*WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		diff := items[i].PriorityScore - items[j].PriorityScore
		if math.Abs(diff) > scoreEpsilon {
			return diff > 0
		}
		return items[i].DueAt.Before(items[j].DueAt)
	})
}

// PriorityLabel buckets a score into the label the clients display
func PriorityLabel(score float64) string {
	switch {
	case score >= 8:
		return "Critical"
	case score >= 6:
		return "High"
	case score >= 4:
		return "Medium"
	case score >= 2:
		return "Low"
	default:
		return "Minimal"
	}
}
