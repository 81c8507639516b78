package matching

import (
	"sort"

	"github.com/google/uuid"
)

// Range is the closed interval [Floor, Floor+Width-1] a score falls into.
type Range struct {
	Floor int
	Width int
}

var (
	TalentMatchRange = Range{Floor: 40, Width: 61}
	JobFeedRange     = Range{Floor: 60, Width: 41}
)

func (r Range) Max() int {
	return r.Floor + r.Width - 1
}

// Score sums the code points of id, reduces the sum modulo the range width and adds
// the floor. It stands in for a recommendation model and must stay bit-for-bit stable.
func Score(id string, r Range) int {
	if r.Width <= 0 {
		return r.Floor
	}
	sum := 0
	for _, ch := range id {
		sum += int(ch)
	}
	return r.Floor + sum%r.Width
}

func TalentMatchScore(talentID uuid.UUID) int {
	return Score(talentID.String(), TalentMatchRange)
}

func JobFeedScore(jobID uuid.UUID) int {
	return Score(jobID.String(), JobFeedRange)
}

type Scored[T any] struct {
	Item  T
	Score int
}

// Rank scores every item and orders the result by score, highest first. Equal scores
// keep their input order.
func Rank[T any](items []T, score func(T) int) []Scored[T] {
	out := make([]Scored[T], 0, len(items))
	for _, it := range items {
		out = append(out, Scored[T]{Item: it, Score: score(it)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
