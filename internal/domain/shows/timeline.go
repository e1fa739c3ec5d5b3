package shows

import "time"

// IsPast reports whether a show starting at start has already happened.
// A show starting exactly at now counts as past.
func IsPast(start, now time.Time) bool {
	return !start.After(now)
}

// SplitByTime partitions list into past (start <= now) and upcoming
// (start > now) shows. Input order is kept in both halves and neither
// slice is nil.
func SplitByTime(list []Show, now time.Time) (past, upcoming []Show) {
	past = make([]Show, 0, len(list))
	upcoming = make([]Show, 0, len(list))
	for _, s := range list {
		if IsPast(s.StartTime, now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// Timeline is the split view of one owner's shows.
type Timeline struct {
	Past          []Show
	Upcoming      []Show
	PastCount     int
	UpcomingCount int
}

func NewTimeline(list []Show, now time.Time) Timeline {
	past, upcoming := SplitByTime(list, now)
	return Timeline{
		Past:          past,
		Upcoming:      upcoming,
		PastCount:     len(past),
		UpcomingCount: len(upcoming),
	}
}
