// Package betting tracks per-day rain bets and derives pari-mutuel-style
// odds from the tally. One Ledger belongs to one interactive session; the
// counts are never persisted.
package betting

import (
	"errors"
	"math"
	"sync"

	"rainbet-service/models"
)

// Category is one of the two mutually exclusive bet outcomes
type Category string

const (
	// CategoryRain is a bet that it will rain
	CategoryRain Category = "rain"
	// CategoryNoRain is a bet that it will not rain
	CategoryNoRain Category = "no_rain"
)

// ErrInvalidCategory is returned when a bet names an unknown category.
// Rejecting instead of silently ignoring surfaces caller bugs.
var ErrInvalidCategory = errors.New("betting: invalid bet category")

// tally holds the two vote counters for a single day. Counters only ever
// increase, by one per recorded bet.
type tally struct {
	rain   int
	noRain int
}

// Ledger holds the vote tallies for one session, keyed by ISO date.
// Entries are created lazily on the first bet for a day and never deleted.
type Ledger struct {
	tallies map[string]*tally
	mutex   sync.RWMutex
}

// NewLedger creates an empty in-memory vote ledger
func NewLedger() *Ledger {
	return &Ledger{
		tallies: make(map[string]*tally),
	}
}

// RecordBet increments the counter for the given category on the given day,
// creating the day's tally if it does not exist yet. An unknown category is
// rejected with ErrInvalidCategory and leaves the ledger untouched.
func (l *Ledger) RecordBet(date string, category Category) error {
	if category != CategoryRain && category != CategoryNoRain {
		return ErrInvalidCategory
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry, exists := l.tallies[date]
	if !exists {
		entry = &tally{}
		l.tallies[date] = entry
	}

	if category == CategoryRain {
		entry.rain++
	} else {
		entry.noRain++
	}
	return nil
}

// Odds computes the current odds for a day from its tally. A day nobody has
// bet on yet yields all-zero odds. Otherwise each side pays total/count,
// rounded to two decimals; a side with no votes is priced at total+1 as a
// conventional stand-in. This is a deliberately simple pari-mutuel-style
// formula, not a calibrated probability model.
func (l *Ledger) Odds(date string) models.Odds {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	entry, exists := l.tallies[date]
	if !exists {
		// Absent day is equivalent to {0,0}
		return models.Odds{}
	}

	total := entry.rain + entry.noRain
	if total == 0 {
		return models.Odds{}
	}

	return models.Odds{
		Total:       total,
		RainOdds:    sideOdds(total, entry.rain),
		NoRainOdds:  sideOdds(total, entry.noRain),
		RainCount:   entry.rain,
		NoRainCount: entry.noRain,
	}
}

// BetDays returns the number of days that have at least one recorded bet
func (l *Ledger) BetDays() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.tallies)
}

// sideOdds prices one side of the book
func sideOdds(total, count int) float64 {
	if count == 0 {
		return float64(total + 1)
	}
	return round2(float64(total) / float64(count))
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
