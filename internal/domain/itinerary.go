package domain

import (
	"slices"
	"time"
)

// DayBucket is one calendar day of a trip itinerary.
// Date is midnight of that day in the location of the trip start.
// Activities is never nil and is ordered by OccursAt ascending.
type DayBucket struct {
	Date       time.Time
	Activities []Activity
}

// Schedule groups activities by calendar day across the span [start, end].
//
// It returns exactly one bucket per calendar day from start's day through
// end's day inclusive, including days with no activities, so the length of
// the result depends only on the span. Calendar days are evaluated in
// start's location; convert start with In(loc) to schedule in another zone.
//
// Activities are sorted (stably) by OccursAt before bucketing. An activity
// whose day falls outside the span is not placed in any bucket. If end's day
// is before start's day the result is empty.
//
// Schedule holds no state and is cheap enough to recompute on every read.
func Schedule(start, end time.Time, activities []Activity) []DayBucket {
	loc := start.Location()
	end = end.In(loc)

	last := dayIndex(start, end)
	if last < 0 {
		return []DayBucket{}
	}

	y, m, d := start.Date()
	days := make([]DayBucket, last+1)
	for i := range days {
		// time.Date normalises d+i across month and year boundaries.
		days[i] = DayBucket{
			Date:       time.Date(y, m, d+i, 0, 0, 0, 0, loc),
			Activities: []Activity{},
		}
	}

	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b Activity) int {
		return a.OccursAt.Compare(b.OccursAt)
	})

	for _, a := range sorted {
		i := dayIndex(start, a.OccursAt.In(loc))
		if i < 0 || i > last {
			continue
		}
		days[i].Activities = append(days[i].Activities, a)
	}
	return days
}

// OnTripDay reports whether t falls on one of the calendar days spanned by
// [start, end], evaluated in start's location.
func OnTripDay(start, end, t time.Time) bool {
	loc := start.Location()
	i := dayIndex(start, t.In(loc))
	return i >= 0 && i <= dayIndex(start, end.In(loc))
}

// dayIndex returns the number of calendar days from from's date to to's date.
// Both values must already be in the same location. Dates are compared as
// UTC midnights so DST transitions never produce 23 or 25 hour days.
func dayIndex(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
