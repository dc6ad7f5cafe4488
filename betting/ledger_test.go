package betting

import (
	"testing"

	"rainbet-service/models"
)

func TestOdds_FreshLedgerIsAllZero(t *testing.T) {
	l := NewLedger()

	for _, date := range []string{"2024-01-15", "2024-06-01", "1999-12-31"} {
		odds := l.Odds(date)
		if odds != (models.Odds{}) {
			t.Errorf("expected all-zero odds for %s, got %+v", date, odds)
		}
	}
	if l.BetDays() != 0 {
		t.Errorf("fresh ledger should track no days, got %d", l.BetDays())
	}
}

func TestRecordBet_CountersMatchCalls(t *testing.T) {
	l := NewLedger()
	date := "2024-01-15"

	for i := 0; i < 4; i++ {
		if err := l.RecordBet(date, CategoryRain); err != nil {
			t.Fatalf("unexpected error recording rain bet: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := l.RecordBet(date, CategoryNoRain); err != nil {
			t.Fatalf("unexpected error recording no_rain bet: %v", err)
		}
	}

	odds := l.Odds(date)
	if odds.RainCount != 4 || odds.NoRainCount != 2 {
		t.Errorf("expected counts 4/2, got %d/%d", odds.RainCount, odds.NoRainCount)
	}
	if odds.Total != odds.RainCount+odds.NoRainCount {
		t.Errorf("total %d does not equal sum of counts %d", odds.Total, odds.RainCount+odds.NoRainCount)
	}
}

func TestOdds_OneSidedBook(t *testing.T) {
	l := NewLedger()
	date := "2024-01-15"

	for i := 0; i < 3; i++ {
		if err := l.RecordBet(date, CategoryRain); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	odds := l.Odds(date)
	if odds.Total != 3 {
		t.Fatalf("expected total 3, got %d", odds.Total)
	}
	if odds.RainOdds != 1.00 {
		t.Errorf("expected rain odds 1.00 (3/3), got %v", odds.RainOdds)
	}
	// The empty side is priced at total+1
	if odds.NoRainOdds != 4 {
		t.Errorf("expected no_rain odds 4 (total+1), got %v", odds.NoRainOdds)
	}
}

func TestOdds_TwoSidedBook(t *testing.T) {
	l := NewLedger()
	date := "2024-01-16"

	l.RecordBet(date, CategoryRain)
	l.RecordBet(date, CategoryRain)
	l.RecordBet(date, CategoryNoRain)

	odds := l.Odds(date)
	if odds.Total != 3 {
		t.Fatalf("expected total 3, got %d", odds.Total)
	}
	if odds.RainOdds != 1.50 {
		t.Errorf("expected rain odds 1.50 (3/2), got %v", odds.RainOdds)
	}
	if odds.NoRainOdds != 3.00 {
		t.Errorf("expected no_rain odds 3.00 (3/1), got %v", odds.NoRainOdds)
	}
}

func TestOdds_RoundedToTwoDecimals(t *testing.T) {
	l := NewLedger()
	date := "2024-01-17"

	// 3/7 votes on rain: 7/3 = 2.333... should round to 2.33
	for i := 0; i < 3; i++ {
		l.RecordBet(date, CategoryRain)
	}
	for i := 0; i < 4; i++ {
		l.RecordBet(date, CategoryNoRain)
	}

	odds := l.Odds(date)
	if odds.RainOdds != 2.33 {
		t.Errorf("expected rain odds 2.33, got %v", odds.RainOdds)
	}
	if odds.NoRainOdds != 1.75 {
		t.Errorf("expected no_rain odds 1.75, got %v", odds.NoRainOdds)
	}
}

func TestRecordBet_InvalidCategory(t *testing.T) {
	l := NewLedger()
	date := "2024-01-15"

	if err := l.RecordBet(date, Category("maybe")); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	// The rejected bet must not have touched the ledger
	if odds := l.Odds(date); odds != (models.Odds{}) {
		t.Errorf("invalid bet mutated the ledger: %+v", odds)
	}
}

func TestOdds_Idempotent(t *testing.T) {
	l := NewLedger()
	date := "2024-01-15"

	l.RecordBet(date, CategoryRain)
	l.RecordBet(date, CategoryNoRain)

	first := l.Odds(date)
	second := l.Odds(date)
	if first != second {
		t.Errorf("odds changed without an intervening bet: %+v vs %+v", first, second)
	}
}

func TestRecordBet_DaysAreIndependent(t *testing.T) {
	l := NewLedger()

	l.RecordBet("2024-01-15", CategoryRain)
	l.RecordBet("2024-01-16", CategoryNoRain)

	if got := l.Odds("2024-01-15").RainCount; got != 1 {
		t.Errorf("expected 1 rain vote on the 15th, got %d", got)
	}
	if got := l.Odds("2024-01-16").RainCount; got != 0 {
		t.Errorf("expected 0 rain votes on the 16th, got %d", got)
	}
	if l.BetDays() != 2 {
		t.Errorf("expected 2 tracked days, got %d", l.BetDays())
	}
}
