package stats

import "github.com/propline/proppool/internal/pool"

// Standing is one leaderboard row. Rank is 1-based and assigned after
// sorting by points descending, then name ascending.
type Standing struct {
	Rank          int    `json:"rank"`
	ParticipantID uint   `json:"participant_id"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"total_points"`
	PicksMade     int    `json:"picks_made"`
}

// OptionCount is the pick tally for a single option of a prop.
type OptionCount struct {
	OptionIndex int    `json:"option_index"`
	Option      string `json:"option"`
	Count       int    `json:"count"`
}

// PropStats aggregates the picks on one prop.
type PropStats struct {
	PropID             uint          `json:"prop_id"`
	Question           string        `json:"question"`
	DisplayOrder       int           `json:"display_order"`
	Resolved           bool          `json:"resolved"`
	CorrectOptionIndex *int          `json:"correct_option_index"`
	TotalPicks         int           `json:"total_picks"`
	OptionCounts       []OptionCount `json:"option_counts"`
	MostPopularIndex   *int          `json:"most_popular_index"`
	MostPopularPct     *float64      `json:"most_popular_percentage"`
	CorrectCount       *int          `json:"correct_count"`
}

// Highlight points at a prop singled out by the summary.
type Highlight struct {
	PropID         uint    `json:"prop_id"`
	Question       string  `json:"question"`
	TopOptionIndex int     `json:"top_option_index"`
	TopOptionPct   float64 `json:"top_option_percentage"`
}

// Summary calls out the props worth talking about. Every field is null until
// at least one prop has picks.
type Summary struct {
	MostAgreed   *Highlight `json:"most_agreed"`
	MostDivisive *Highlight `json:"most_divisive"`
	BiggestUpset *Highlight `json:"biggest_upset"`
}

// Leaderboard is the full aggregation for one pool.
type Leaderboard struct {
	PoolCode         string      `json:"pool_code"`
	PoolStatus       pool.Status `json:"pool_status"`
	HasResolvedProps bool        `json:"has_resolved_props"`
	Standings        []Standing  `json:"standings"`
	PropStats        []PropStats `json:"prop_stats"`
	Summary          Summary     `json:"summary"`
}
