// ABOUTME: Ranks stored interventions against a free-text problem description.
// ABOUTME: Filters by a strict score threshold and returns the top-K matches.

package similarity

import (
	"errors"
	"sort"
	"strings"

	"github.com/harper/machinelog/internal/models"
)

var (
	// ErrEmptyQuery rejects a blank description before any scan.
	ErrEmptyQuery = errors.New("similarity query is empty")
	// ErrNoData means nothing has been recorded yet.
	ErrNoData = errors.New("no interventions recorded")
	// ErrNoMatches means records exist but none cleared the threshold.
	ErrNoMatches = errors.New("no interventions above the similarity threshold")
)

const (
	DefaultThreshold = 0.3
	DefaultTopK      = 5
)

type Match struct {
	Score        float64
	Intervention *models.Intervention
}

type Ranker struct {
	Threshold float64
	TopK      int
}

func NewRanker(threshold float64, topK int) *Ranker {
	return &Ranker{Threshold: threshold, TopK: topK}
}

// Rank scores query against every stored problem description and
// returns at most TopK matches with score strictly above Threshold,
// ordered by score descending. Ties go to the most recent
// intervention, then to the highest id, so the order is deterministic.
func (r *Ranker) Rank(query string, interventions []*models.Intervention) ([]Match, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if len(interventions) == 0 {
		return nil, ErrNoData
	}

	var matches []Match
	for _, iv := range interventions {
		score := Ratio(q, strings.ToLower(iv.Problem))
		if score > r.Threshold {
			matches = append(matches, Match{Score: score, Intervention: iv})
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Intervention.CreatedAt.Equal(b.Intervention.CreatedAt) {
			return a.Intervention.CreatedAt.After(b.Intervention.CreatedAt)
		}
		return a.Intervention.ID > b.Intervention.ID
	})

	if len(matches) > r.TopK {
		matches = matches[:r.TopK]
	}
	return matches, nil
}
