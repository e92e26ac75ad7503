package planner

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	// March 2025 starts on a Saturday.
	grid := MonthGrid(2025, time.March, time.Sunday)

	if got := grid[0][0].Date; got != "2025-02-23" {
		t.Fatalf("first cell = %s", got)
	}
	if grid[0][0].InMonth {
		t.Fatal("leading February day marked in month")
	}
	if got := grid[0][6]; got.Date != "2025-03-01" || !got.InMonth {
		t.Fatalf("first of month = %+v", got)
	}
	if got := grid[5][6].Date; got != "2025-04-05" {
		t.Fatalf("last cell = %s", got)
	}

	seen := map[string]bool{}
	for _, week := range grid {
		for _, c := range week {
			if seen[c.Date] {
				t.Fatalf("duplicate date %s", c.Date)
			}
			seen[c.Date] = true
		}
	}
}

func TestMonthGridMondayStart(t *testing.T) {
	grid := MonthGrid(2025, time.March, time.Monday)
	if got := grid[0][0].Date; got != "2025-02-24" {
		t.Fatalf("first cell = %s", got)
	}
	if grid[0][0].Weekday != time.Monday {
		t.Fatalf("weekday = %s", grid[0][0].Weekday)
	}
}

func TestWeekGrid(t *testing.T) {
	week := WeekGrid(time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC), time.Sunday)
	if week[0].Date != "2025-03-09" || week[6].Date != "2025-03-15" {
		t.Fatalf("week = %s..%s", week[0].Date, week[6].Date)
	}
}

func TestBucketByDate(t *testing.T) {
	posts := []*ScheduledPost{
		{ID: "a", ScheduledDate: "2025-03-12T00:00:00.000Z"},
		{ID: "b", ScheduledDate: "2025-03-12"},
		{ID: "c", ScheduledDate: "2025-03-13"},
	}
	buckets := BucketByDate(posts)
	if len(buckets["2025-03-12"]) != 2 || len(buckets["2025-03-13"]) != 1 {
		t.Fatalf("buckets = %v", buckets)
	}
	if posts[0].ScheduledDate != "2025-03-12T00:00:00.000Z" {
		t.Fatal("input mutated")
	}
}
