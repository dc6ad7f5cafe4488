package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"rainbet-service/betting"
)

// Simulates a betting session against an in-memory ledger and prints how
// the odds move as votes come in. Useful for eyeballing the pari-mutuel
// formula without starting the server.
func main() {
	fmt.Println("=== Odds Simulation ===")

	ledger := betting.NewLedger()
	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	fmt.Printf("Simulating 20 votes for %s\n\n", date)

	for i := 1; i <= 20; i++ {
		category := betting.CategoryRain
		if rng.Intn(3) == 0 { // Roughly 2:1 bias towards rain
			category = betting.CategoryNoRain
		}

		if err := ledger.RecordBet(date, category); err != nil {
			log.Fatalf("failed to record bet: %v", err)
		}

		odds := ledger.Odds(date)
		fmt.Printf("vote %2d (%-7s)  total=%2d  rain %.2f (%d)  no_rain %.2f (%d)\n",
			i, category, odds.Total,
			odds.RainOdds, odds.RainCount,
			odds.NoRainOdds, odds.NoRainCount)
	}

	final := ledger.Odds(date)
	fmt.Printf("\nFinal book: %d votes, rain pays %.2fx, no_rain pays %.2fx\n",
		final.Total, final.RainOdds, final.NoRainOdds)
}
