package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_KnownValues(t *testing.T) {
	cases := []struct {
		id     string
		talent int
		feed   int
	}{
		{id: "", talent: 40, feed: 60},
		{id: "abc", talent: 90, feed: 67},
		{id: "550e8400-e29b-41d4-a716-446655440002", talent: 96, feed: 79},
		{id: "550e8400-e29b-41d4-a716-446655440006", talent: 100, feed: 83},
		{id: "00000000-0000-0000-0000-000000000000", talent: 48, feed: 95},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.talent, Score(tc.id, TalentMatchRange), "talent score for %q", tc.id)
		assert.Equal(t, tc.feed, Score(tc.id, JobFeedRange), "feed score for %q", tc.id)
	}
}

func TestScore_SumsCodePointsNotBytes(t *testing.T) {
	// 'é' is U+00E9 (233) but two bytes in UTF-8.
	assert.Equal(t, 40+233%61, Score("é", TalentMatchRange))
}

func TestScore_DeterministicAndInRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		id := uuid.New()

		talent := TalentMatchScore(id)
		require.Equal(t, talent, TalentMatchScore(id))
		require.GreaterOrEqual(t, talent, 40)
		require.LessOrEqual(t, talent, 100)

		feed := JobFeedScore(id)
		require.Equal(t, feed, JobFeedScore(id))
		require.GreaterOrEqual(t, feed, 60)
		require.LessOrEqual(t, feed, 100)
	}
}

func TestRange_Max(t *testing.T) {
	assert.Equal(t, 100, TalentMatchRange.Max())
	assert.Equal(t, 100, JobFeedRange.Max())
}

func TestRank_SortsDescendingAndKeepsTieOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	scores := map[string]int{"a": 50, "b": 70, "c": 50, "d": 90}

	ranked := Rank(items, func(s string) int { return scores[s] })

	got := make([]string, 0, len(ranked))
	for _, r := range ranked {
		got = append(got, r.Item)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, got)
	assert.Equal(t, 90, ranked[0].Score)
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank([]int{}, func(int) int { return 0 })
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
