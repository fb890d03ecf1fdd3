// stats computes leaderboards and pick statistics as pure functions over
// already-loaded rows. Nothing here touches the database, which keeps the
// aggregation deterministic and directly testable.
package stats

import (
	"sort"

	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
)

// Compute aggregates a pool's current state into a Leaderboard. Removed
// participants are excluded entirely: their rows do not rank and their picks
// do not count toward any statistic. Props are expected in display order and
// keep it in the output.
func Compute(p *pool.Pool, props []prop.Prop, participants []pool.Participant, picks []pick.Pick) *Leaderboard {
	active := make(map[uint]*pool.Participant, len(participants))
	for i := range participants {
		if participants[i].Status == pool.ParticipantActive {
			active[participants[i].ID] = &participants[i]
		}
	}

	picksMade := make(map[uint]int, len(active))
	picksByProp := make(map[uint][]pick.Pick, len(props))
	for _, pk := range picks {
		if _, ok := active[pk.ParticipantID]; !ok {
			continue
		}
		picksMade[pk.ParticipantID]++
		picksByProp[pk.PropID] = append(picksByProp[pk.PropID], pk)
	}

	board := &Leaderboard{
		PoolCode:   p.Code,
		PoolStatus: p.Status,
		Standings:  standings(active, picksMade),
		PropStats:  make([]PropStats, 0, len(props)),
	}

	for i := range props {
		ps := propStats(&props[i], picksByProp[props[i].ID])
		if props[i].CorrectOptionIndex != nil {
			board.HasResolvedProps = true
		}
		board.PropStats = append(board.PropStats, ps)
	}

	board.Summary = summarize(board.PropStats)
	return board
}

func standings(active map[uint]*pool.Participant, picksMade map[uint]int) []Standing {
	rows := make([]Standing, 0, len(active))
	for id, participant := range active {
		rows = append(rows, Standing{
			ParticipantID: id,
			Name:          participant.Name,
			TotalPoints:   participant.TotalPoints,
			PicksMade:     picksMade[id],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].Name < rows[j].Name
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func propStats(pr *prop.Prop, picks []pick.Pick) PropStats {
	counts := make([]int, len(pr.Options))
	total := 0
	for _, pk := range picks {
		if pk.SelectedOptionIndex < 0 || pk.SelectedOptionIndex >= len(counts) {
			continue
		}
		counts[pk.SelectedOptionIndex]++
		total++
	}

	ps := PropStats{
		PropID:             pr.ID,
		Question:           pr.Question,
		DisplayOrder:       pr.DisplayOrder,
		Resolved:           pr.CorrectOptionIndex != nil,
		CorrectOptionIndex: pr.CorrectOptionIndex,
		TotalPicks:         total,
		OptionCounts:       make([]OptionCount, len(counts)),
	}
	for i, count := range counts {
		ps.OptionCounts[i] = OptionCount{
			OptionIndex: i,
			Option:      pr.Options[i],
			Count:       count,
		}
	}

	if total > 0 {
		// Strict greater-than keeps the lowest index on ties.
		top := 0
		for i := 1; i < len(counts); i++ {
			if counts[i] > counts[top] {
				top = i
			}
		}
		pct := float64(counts[top]) / float64(total) * 100
		ps.MostPopularIndex = &top
		ps.MostPopularPct = &pct
	}

	if pr.CorrectOptionIndex != nil {
		correct := 0
		if idx := *pr.CorrectOptionIndex; idx >= 0 && idx < len(counts) {
			correct = counts[idx]
		}
		ps.CorrectCount = &correct
	}

	return ps
}

// summarize walks prop stats in display order, so every strict comparison
// resolves ties in favor of the earlier prop.
func summarize(propStats []PropStats) Summary {
	var summary Summary

	for i := range propStats {
		ps := &propStats[i]
		if ps.TotalPicks == 0 || ps.MostPopularIndex == nil {
			continue
		}

		highlight := &Highlight{
			PropID:         ps.PropID,
			Question:       ps.Question,
			TopOptionIndex: *ps.MostPopularIndex,
			TopOptionPct:   *ps.MostPopularPct,
		}

		if summary.MostAgreed == nil || highlight.TopOptionPct > summary.MostAgreed.TopOptionPct {
			summary.MostAgreed = highlight
		}
		if summary.MostDivisive == nil || highlight.TopOptionPct < summary.MostDivisive.TopOptionPct {
			summary.MostDivisive = highlight
		}
		if ps.Resolved && ps.CorrectOptionIndex != nil && *ps.CorrectOptionIndex != highlight.TopOptionIndex {
			if summary.BiggestUpset == nil || highlight.TopOptionPct > summary.BiggestUpset.TopOptionPct {
				summary.BiggestUpset = highlight
			}
		}
	}

	return summary
}
