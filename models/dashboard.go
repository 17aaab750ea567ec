package models

import "math"

// Progress counts completed matches against the whole schedule.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

func NewProgress(matches []Match) Progress {
	p := Progress{Total: len(matches)}
	for _, m := range matches {
		if m.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) * 100 / float64(p.Total)))
	}
	return p
}
