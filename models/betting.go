package models

// Odds is the pari-mutuel-style price derived from a single day's vote
// tally. It is computed on demand and never stored: total = rainCount +
// noRainCount, and each side's odds are total/count (or total+1 when that
// side has no votes yet). A day with no votes at all is all zeros.
type Odds struct {
	Total       int     `json:"total"`
	RainOdds    float64 `json:"rainOdds"`
	NoRainOdds  float64 `json:"noRainOdds"`
	RainCount   int     `json:"rainCount"`
	NoRainCount int     `json:"noRainCount"`
}
