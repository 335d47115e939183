package datemath

import "time"

// transitionHorizon bounds the search for offset changes. Zones without DST
// have no transition inside it.
const transitionHorizon = 400 * 24 * time.Hour

// NextTransition returns the first instant after t at which the UTC offset of
// t's location changes.
func NextTransition(t time.Time) (time.Time, bool) {
	return findTransition(t, 24*time.Hour)
}

// PrevTransition returns the most recent instant at or before t at which the
// UTC offset of t's location changed.
func PrevTransition(t time.Time) (time.Time, bool) {
	return findTransition(t, -24*time.Hour)
}

// StandardOffset returns the zone offset in seconds without daylight saving
// for the year of t.
func StandardOffset(t time.Time) int {
	loc := t.Location()
	_, jan := time.Date(t.Year(), time.January, 1, 12, 0, 0, 0, loc).Zone()
	_, jul := time.Date(t.Year(), time.July, 1, 12, 0, 0, 0, loc).Zone()
	if jul < jan {
		return jul
	}
	return jan
}

func findTransition(t time.Time, step time.Duration) (time.Time, bool) {
	t = t.Truncate(time.Second)
	_, offset := t.Zone()

	prev := t
	for walked := time.Duration(0); walked < transitionHorizon; walked += 24 * time.Hour {
		next := prev.Add(step)
		if _, o := next.Zone(); o != offset {
			if step > 0 {
				return bisect(prev, next, offset), true
			}
			return bisect(next, prev, o), true
		}
		prev = next
	}
	return time.Time{}, false
}

// bisect narrows (lo, hi] to the first second whose offset differs from the
// offset at lo.
func bisect(lo, hi time.Time, offset int) time.Time {
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2).Truncate(time.Second)
		if _, o := mid.Zone(); o == offset {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
