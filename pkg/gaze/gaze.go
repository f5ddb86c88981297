package gaze

import (
	"fmt"
	"time"

	"github.com/tomas-kadlec/gazelab/pkg/xcorr"
)

const (
	DefaultFramerate        = 25
	DefaultConstrainSeconds = 2
)

// Sample is one frame of coded gaze data for a subject. Value is the
// coded observation, typically 0 for not looking and 1 for looking at
// the target.
type Sample struct {
	TimeStamp time.Time
	Value     float64
}

// Values extracts the coded series from a recording, in frame order.
func Values(samples []Sample) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}

// CrossCorrelation correlates two subjects' coded gaze series. The lag
// window is constrained to framerate*constrainSeconds frames on each
// side of zero, so a peak at positive lag means person2's gaze trailed
// person1's by that many frames.
func CrossCorrelation(person1, person2 []float64, framerate, constrainSeconds int) (xcorr.Result, error) {
	if framerate <= 0 {
		return xcorr.Result{}, fmt.Errorf("%w: framerate %d must be positive", xcorr.ErrInvalidArgument, framerate)
	}
	if constrainSeconds < 0 {
		return xcorr.Result{}, fmt.Errorf("%w: constrain seconds %d is negative", xcorr.ErrInvalidArgument, constrainSeconds)
	}
	return xcorr.Compute(person1, person2, framerate*constrainSeconds)
}
