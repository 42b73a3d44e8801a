package storyboard

import "math"

// TotalDuration sums duration_sec across scenes. Non-finite values count as
// zero rather than poisoning the total.
func TotalDuration(scenes []Scene) float64 {
	var total float64
	for _, sc := range scenes {
		d := sc.DurationSec
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		total += d
	}
	return total
}

// DurationStatus compares the summed scene durations against the target.
type DurationStatus struct {
	Total  float64 `json:"total_sec"`
	Target float64 `json:"target_sec"`
	Over   bool    `json:"over_target"`
}

func (s *Storyboard) DurationStatus() DurationStatus {
	total := TotalDuration(s.Scenes)
	return DurationStatus{
		Total:  total,
		Target: s.Metadata.TotalDurationSec,
		Over:   total > s.Metadata.TotalDurationSec,
	}
}
