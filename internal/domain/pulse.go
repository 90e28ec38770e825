package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	MinScore = 1
	MaxScore = 10
)

// DefaultResponses are the slider positions a fresh pulse form starts at.
var DefaultResponses = Responses{
	DimensionSatisfaction:  7,
	DimensionWorkload:      5,
	DimensionCommunication: 7,
	DimensionGrowth:        6,
	DimensionTeamwork:      8,
}

// PulseRecord is one weekly pulse-check submission.
type PulseRecord struct {
	ID        int64     `json:"id"`
	Responses Responses `json:"responses"`
	Timestamp time.Time `json:"timestamp"`
	Week      string    `json:"week"`
}

// Responses maps each pulse dimension to a score in [MinScore, MaxScore].
type Responses map[Dimension]int

// Score returns the score recorded for d.
func (r Responses) Score(d Dimension) (int, bool) {
	v, ok := r[d]
	return v, ok
}

// UnmarshalJSON accepts both plain integer scores and the one-element array
// form ({"satisfaction":[8]}) produced by the browser build.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var raw map[Dimension]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*r = nil
		return nil
	}

	out := make(Responses, len(raw))
	for dim, msg := range raw {
		var n int
		if err := json.Unmarshal(msg, &n); err == nil {
			out[dim] = n
			continue
		}
		var arr []int
		if err := json.Unmarshal(msg, &arr); err != nil || len(arr) == 0 {
			return fmt.Errorf("responses.%s: expected integer score", dim)
		}
		out[dim] = arr[0]
	}
	*r = out
	return nil
}

// WeekOf returns the YYYY-MM-DD day a pulse taken at t belongs to.
func WeekOf(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
