// ABOUTME: Tests for the similarity ranker.
// ABOUTME: Covers threshold strictness, top-K, tie ordering, and error states.

package similarity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/machinelog/internal/models"
)

func intervention(id int64, createdAt time.Time, problem string) *models.Intervention {
	return &models.Intervention{
		ID:        id,
		CreatedAt: createdAt,
		Machine:   "press 3",
		Operator:  "rossi",
		Category:  models.CategoryMechanical,
		Problem:   problem,
		Solution:  "fixed",
	}
}

func TestRankEmptyQuery(t *testing.T) {
	r := NewRanker(DefaultThreshold, DefaultTopK)
	corpus := []*models.Intervention{intervention(1, time.Now(), "jam")}

	_, err := r.Rank("   ", corpus)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRankNoData(t *testing.T) {
	r := NewRanker(DefaultThreshold, DefaultTopK)

	_, err := r.Rank("pump leaking", nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRankNoMatches(t *testing.T) {
	r := NewRanker(DefaultThreshold, DefaultTopK)
	corpus := []*models.Intervention{intervention(1, time.Now(), "zzzzzz")}

	_, err := r.Rank("pump leaking oil", corpus)
	assert.ErrorIs(t, err, ErrNoMatches)

	// NoData and NoMatches stay distinguishable for callers.
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestRankThresholdIsStrict(t *testing.T) {
	// Ratio("abc0123456", "abcqrstuvw") is exactly 0.3; a score equal
	// to the threshold must be excluded.
	r := NewRanker(0.3, DefaultTopK)
	corpus := []*models.Intervention{intervention(1, time.Now(), "abcqrstuvw")}

	_, err := r.Rank("abc0123456", corpus)
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestRankSimilarProblemScenario(t *testing.T) {
	r := NewRanker(0.3, 5)
	corpus := []*models.Intervention{
		intervention(1, time.Now(), "pompa idraulica perde olio"),
	}

	matches, err := r.Rank("perdita olio pompa", corpus)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Greater(t, matches[0].Score, 0.3)
	assert.Equal(t, int64(1), matches[0].Intervention.ID)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	r := NewRanker(0.1, 10)
	now := time.Now()
	corpus := []*models.Intervention{
		intervention(1, now, "conveyor belt squeaks"),
		intervention(2, now, "hydraulic pump leaking oil badly"),
		intervention(3, now, "pump leaking oil"),
	}

	matches, err := r.Rank("pump leaking oil", corpus)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, int64(3), matches[0].Intervention.ID)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRankTieBrokenByMostRecent(t *testing.T) {
	r := NewRanker(0.3, 5)
	older := intervention(1, time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local), "pump leaking oil")
	newer := intervention(2, time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local), "pump leaking oil")
	corpus := []*models.Intervention{older, newer}

	matches, err := r.Rank("pump leaking oil", corpus)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, int64(2), matches[0].Intervention.ID)
	assert.Equal(t, int64(1), matches[1].Intervention.ID)
}

func TestRankEqualTimestampTieBrokenByID(t *testing.T) {
	r := NewRanker(0.3, 5)
	when := time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local)
	corpus := []*models.Intervention{
		intervention(7, when, "pump leaking oil"),
		intervention(9, when, "pump leaking oil"),
	}

	matches, err := r.Rank("pump leaking oil", corpus)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(9), matches[0].Intervention.ID)
}

func TestRankHonorsTopK(t *testing.T) {
	r := NewRanker(0.3, 2)
	now := time.Now()
	var corpus []*models.Intervention
	for i := int64(1); i <= 6; i++ {
		corpus = append(corpus, intervention(i, now.Add(time.Duration(i)*time.Minute), "pump leaking oil"))
	}

	matches, err := r.Rank("pump leaking oil", corpus)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRankMatchesCaseInsensitively(t *testing.T) {
	r := NewRanker(0.3, 5)
	corpus := []*models.Intervention{intervention(1, time.Now(), "PUMP LEAKING OIL")}

	matches, err := r.Rank("pump leaking oil", corpus)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].Score)
}
