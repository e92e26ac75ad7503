package planner

import "time"

const isoDate = "2006-01-02"

// Cell is one day on a calendar grid.
type Cell struct {
	Date    string
	Day     int
	InMonth bool
	Weekday time.Weekday
}

func cellFor(t time.Time, month time.Month) Cell {
	return Cell{
		Date:    t.Format(isoDate),
		Day:     t.Day(),
		InMonth: t.Month() == month,
		Weekday: t.Weekday(),
	}
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// MonthGrid returns six weeks covering the month, padded with days of the
// neighbouring months.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) [6][7]Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	day := startOfWeek(first, weekStart)

	var grid [6][7]Cell
	for w := 0; w < 6; w++ {
		for d := 0; d < 7; d++ {
			grid[w][d] = cellFor(day, month)
			day = day.AddDate(0, 0, 1)
		}
	}
	return grid
}

// WeekGrid returns the week containing day.
func WeekGrid(day time.Time, weekStart time.Weekday) [7]Cell {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := startOfWeek(d, weekStart)

	var week [7]Cell
	for i := 0; i < 7; i++ {
		t := start.AddDate(0, 0, i)
		week[i] = cellFor(t, t.Month())
	}
	return week
}

// BucketByDate groups posts on the date prefix of scheduled_date, so full
// ISO timestamps land on their day.
func BucketByDate(posts []*ScheduledPost) map[string][]*ScheduledPost {
	out := make(map[string][]*ScheduledPost)
	for _, p := range posts {
		date := p.ScheduledDate
		if len(date) > len(isoDate) {
			date = date[:len(isoDate)]
		}
		cp := p.Clone()
		cp.ScheduledDate = date
		out[date] = append(out[date], cp)
	}
	return out
}
