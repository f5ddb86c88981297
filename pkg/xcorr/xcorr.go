package xcorr

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Entry is the normalized cross-correlation value at a single lag.
// A positive lag means series b is delayed relative to series a,
// a negative lag means it leads.
type Entry struct {
	Lag   int
	Value float64
}

// Result holds the full correlogram over the lag window, ordered by
// increasing lag, together with the peak entry and the zero-lag value.
type Result struct {
	Entries      []Entry
	BestLag      int
	BestValue    float64
	ZeroLagValue float64
}

// Compute calculates the normalized cross-correlation of two series for
// every lag in [-maxLag, +maxLag]. At each lag the overlapping
// subsequences are demeaned before the dot product, so values are
// Pearson-style coefficients in [-1, 1]. A constant overlap on either
// side yields 0 at that lag instead of NaN.
//
// The peak is the entry with the largest absolute value. Exact ties are
// resolved towards the smallest absolute lag, then towards the smaller
// (more negative) lag, so results are deterministic.
func Compute(seriesA, seriesB []float64, maxLag int) (Result, error) {
	if len(seriesA) == 0 {
		return Result{}, fmt.Errorf("%w: series a is empty", ErrInvalidArgument)
	}
	if len(seriesB) == 0 {
		return Result{}, fmt.Errorf("%w: series b is empty", ErrInvalidArgument)
	}
	if maxLag < 0 {
		return Result{}, fmt.Errorf("%w: max lag %d is negative", ErrInvalidArgument, maxLag)
	}
	if shorter := min(len(seriesA), len(seriesB)); maxLag >= shorter {
		return Result{}, fmt.Errorf("%w: max lag %d leaves no overlap for series of lengths %d and %d",
			ErrInvalidArgument, maxLag, len(seriesA), len(seriesB))
	}

	entries := make([]Entry, 0, 2*maxLag+1)
	for lag := -maxLag; lag <= maxLag; lag++ {
		entries = append(entries, Entry{Lag: lag, Value: valueAt(seriesA, seriesB, lag)})
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if betterPeak(e, best) {
			best = e
		}
	}

	return Result{
		Entries:      entries,
		BestLag:      best.Lag,
		BestValue:    best.Value,
		ZeroLagValue: entries[maxLag].Value,
	}, nil
}

// valueAt computes the normalized correlation of the overlap between a
// and b when b is shifted by lag positions relative to a. The window
// precondition guarantees a non-empty overlap.
func valueAt(a, b []float64, lag int) float64 {
	lo := max(0, -lag)
	hi := min(len(a), len(b)-lag)

	subA := a[lo:hi]
	subB := b[lo+lag : hi+lag]

	var meanA, meanB float64
	for i := range subA {
		meanA += subA[i]
		meanB += subB[i]
	}
	n := float64(len(subA))
	meanA /= n
	meanB /= n

	var dot, sqA, sqB float64
	for i := range subA {
		da := subA[i] - meanA
		db := subB[i] - meanB
		dot += da * db
		sqA += da * da
		sqB += db * db
	}

	if sqA == 0 || sqB == 0 {
		return 0
	}

	v := dot / math.Sqrt(sqA*sqB)

	// Clamp floating point drift so callers can rely on [-1, 1].
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func betterPeak(e, best Entry) bool {
	ev, bv := math.Abs(e.Value), math.Abs(best.Value)
	if ev != bv {
		return ev > bv
	}
	el, bl := abs(e.Lag), abs(best.Lag)
	if el != bl {
		return el < bl
	}
	return e.Lag < best.Lag
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
