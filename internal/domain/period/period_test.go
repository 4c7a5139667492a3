package period_test

import (
	"testing"
	"time"

	"finsight/internal/domain/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestResolveWeeklyStartsOnMonday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		now       time.Time
		offset    int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday resolves to containing week",
			now:       date(2025, time.June, 11), // quarta
			offset:    0,
			wantStart: time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "monday is its own week start",
			now:       date(2025, time.June, 9),
			offset:    0,
			wantStart: time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the week started six days earlier",
			now:       date(2025, time.June, 15),
			offset:    0,
			wantStart: time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "offset shifts whole weeks",
			now:       date(2025, time.June, 11),
			offset:    2,
			wantStart: time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := period.Resolve(period.Weekly, tt.offset, tt.now)
			if !p.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, esperado %v", p.Start, tt.wantStart)
			}
			if !p.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, esperado %v", p.End, tt.wantEnd)
			}
		})
	}
}

func TestResolveMonthlyLandsInsideFullPeriod(t *testing.T) {
	t.Parallel()

	// 31 de março menos um mês não pode normalizar para março de novo.
	p := period.Resolve(period.Monthly, 1, date(2025, time.March, 31))

	wantStart := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)

	if !p.Start.Equal(wantStart) {
		t.Errorf("Start = %v, esperado %v", p.Start, wantStart)
	}
	if !p.End.Equal(wantEnd) {
		t.Errorf("End = %v, esperado %v", p.End, wantEnd)
	}
	if p.Label != "Feb 2025" {
		t.Errorf("Label = %q, esperado %q", p.Label, "Feb 2025")
	}
}

func TestResolveMonthlyCrossesYearBoundary(t *testing.T) {
	t.Parallel()

	p := period.Resolve(period.Monthly, 3, date(2025, time.February, 15))

	wantStart := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) {
		t.Errorf("Start = %v, esperado %v", p.Start, wantStart)
	}
	if p.Label != "Nov 2024" {
		t.Errorf("Label = %q, esperado %q", p.Label, "Nov 2024")
	}
}

func TestResolveQuarterly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		now       time.Time
		offset    int
		wantStart time.Time
		wantLabel string
	}{
		{
			name:      "current quarter",
			now:       date(2025, time.May, 20),
			offset:    0,
			wantStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantLabel: "Q2 2025",
		},
		{
			name:      "offset crosses year",
			now:       date(2025, time.February, 10),
			offset:    2,
			wantStart: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantLabel: "Q3 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := period.Resolve(period.Quarterly, tt.offset, tt.now)
			if !p.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, esperado %v", p.Start, tt.wantStart)
			}
			if p.Label != tt.wantLabel {
				t.Errorf("Label = %q, esperado %q", p.Label, tt.wantLabel)
			}
		})
	}
}

func TestResolveYearly(t *testing.T) {
	t.Parallel()

	p := period.Resolve(period.Yearly, 1, date(2025, time.August, 5))

	if p.Label != "2024" {
		t.Errorf("Label = %q, esperado %q", p.Label, "2024")
	}
	if !p.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v", p.Start)
	}
	if !p.End.Equal(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("End = %v", p.End)
	}
}

func TestResolveNegativeOffsetYieldsFuturePeriod(t *testing.T) {
	t.Parallel()

	p := period.Resolve(period.Monthly, -1, date(2025, time.December, 10))

	if p.Label != "Jan 2026" {
		t.Errorf("Label = %q, esperado %q", p.Label, "Jan 2026")
	}
}

func TestPreviousAnchorsOnPeriodStart(t *testing.T) {
	t.Parallel()

	current := period.Resolve(period.Monthly, 0, date(2025, time.January, 31))
	prev := period.Previous(period.Monthly, current)

	if prev.Label != "Dec 2024" {
		t.Errorf("Label = %q, esperado %q", prev.Label, "Dec 2024")
	}
}

func TestIsCurrent(t *testing.T) {
	t.Parallel()

	now := date(2025, time.June, 11)

	current := period.Resolve(period.Monthly, 0, now)
	past := period.Resolve(period.Monthly, 1, now)

	if !period.IsCurrent(period.Monthly, current, now) {
		t.Error("período do offset 0 deveria ser corrente")
	}
	if period.IsCurrent(period.Monthly, past, now) {
		t.Error("período do offset 1 não deveria ser corrente")
	}
}

func TestContainsIsInclusiveAtBoundaries(t *testing.T) {
	t.Parallel()

	p := period.Resolve(period.Monthly, 0, date(2025, time.June, 11))

	if !period.Contains(p, p.Start) {
		t.Error("Start deveria pertencer ao período")
	}
	if !period.Contains(p, p.End) {
		t.Error("End deveria pertencer ao período")
	}
	if period.Contains(p, p.Start.Add(-time.Second)) {
		t.Error("instante anterior ao Start não deveria pertencer")
	}
	if period.Contains(p, p.End.Add(time.Second)) {
		t.Error("instante posterior ao End não deveria pertencer")
	}
}

func TestParseGranularity(t *testing.T) {
	t.Parallel()

	if _, err := period.ParseGranularity("monthly"); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
	if _, err := period.ParseGranularity("daily"); err == nil {
		t.Error("granularidade inválida deveria retornar erro")
	}
}
