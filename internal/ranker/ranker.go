package ranker

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/salonflow/dialog-server-go/internal/model"
)

// Weights holds the proximity-scoring parameters. The shipped defaults have
// no documented rationale, so they are parameters rather than literals; the
// inclusive boundaries matter for which slots earn the best-match flag.
type Weights struct {
	NearMinutes int
	MidMinutes  int
	FarMinutes  int
	NearScore   int
	MidScore    int
	FarScore    int
	StaffBonus  int
}

func DefaultWeights() Weights {
	return Weights{
		NearMinutes: 60,
		MidMinutes:  120,
		FarMinutes:  180,
		NearScore:   500,
		MidScore:    300,
		FarScore:    100,
		StaffBonus:  50,
	}
}

type Ranker struct {
	weights Weights
}

func New(weights Weights) *Ranker {
	return &Ranker{weights: weights}
}

// Rank scores candidates by proximity to the target and returns them sorted
// descending by score with contiguous 1-indexed ranks. Ties break by
// ascending date, then time, then staff id, so the order is fully
// deterministic. Candidates are assumed pre-filtered by service.
func (r *Ranker) Rank(candidates []model.CandidateSlot, target model.SlotTarget) []model.RankedSlot {
	if len(candidates) == 0 {
		return nil
	}

	targetMinutes, err := minutesOfDay(target.Time)
	if err != nil {
		targetMinutes = 0
	}

	ranked := make([]model.RankedSlot, 0, len(candidates))
	for _, c := range candidates {
		m, err := minutesOfDay(c.Time)
		if err != nil {
			continue
		}

		dist := targetMinutes - m
		if dist < 0 {
			dist = -dist
		}

		score := r.timeScore(dist)
		if target.PreferredStaff != "" && c.StaffID == target.PreferredStaff {
			score += r.weights.StaffBonus
		}

		ranked = append(ranked, model.RankedSlot{
			CandidateSlot: c,
			Score:         score,
			BestMatch:     dist <= r.weights.NearMinutes,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.StaffID < b.StaffID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func (r *Ranker) timeScore(distMinutes int) int {
	switch {
	case distMinutes <= r.weights.NearMinutes:
		return r.weights.NearScore
	case distMinutes <= r.weights.MidMinutes:
		return r.weights.MidScore
	case distMinutes <= r.weights.FarMinutes:
		return r.weights.FarScore
	default:
		return 0
	}
}

// minutesOfDay parses a zero-padded "15:04" clock string.
func minutesOfDay(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return h*60 + m, nil
}
