package fixed

import (
	"testing"
)

func createPoints(values ...float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = FromFloat64(v)
	}
	return points
}

func assertPointEqual(t *testing.T, expected, actual Point, tolerance float64, msg string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	tol := FromFloat64(tolerance)
	if diff.Gt(tol) {
		t.Errorf("%s: expected %v, got %v (diff: %v)", msg, expected, actual, diff)
	}
}

func TestFixedMath_Mean(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		expected Point
	}{
		{
			name:     "empty slice",
			points:   []Point{},
			expected: Zero,
		},
		{
			name:     "single point",
			points:   createPoints(5.0),
			expected: FromFloat64(5.0),
		},
		{
			name:     "multiple positive points",
			points:   createPoints(1.0, 2.0, 3.0, 4.0, 5.0),
			expected: FromFloat64(3.0),
		},
		{
			name:     "mixed positive and negative",
			points:   createPoints(-2.0, -1.0, 0.0, 1.0, 2.0),
			expected: Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mean(tt.points)
			assertPointEqual(t, tt.expected, result, 0.0001, "Mean calculation")
		})
	}
}

func TestFixedMath_StdDev(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		expected Point
	}{
		{
			name:     "empty slice",
			points:   []Point{},
			expected: Zero,
		},
		{
			name:     "single point",
			points:   createPoints(42.0),
			expected: Zero,
		},
		{
			name:     "known deviation",
			points:   createPoints(2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0),
			expected: FromFloat64(2.0),
		},
		{
			name:     "constant points",
			points:   createPoints(3.0, 3.0, 3.0, 3.0),
			expected: Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StdDev(tt.points, Mean(tt.points))
			assertPointEqual(t, tt.expected, result, 0.0001, "StdDev calculation")
		})
	}
}

func TestFixedMath_SampleStdDev(t *testing.T) {
	points := createPoints(2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0)
	expected := FromFloat64(2.13809)

	result := SampleStdDev(points, Mean(points))
	assertPointEqual(t, expected, result, 0.0001, "SampleStdDev calculation")

	if !SampleStdDev(createPoints(1.0), One).IsZero() {
		t.Error("single point sample deviation should be zero")
	}
}

func TestFixedMath_MinMax(t *testing.T) {
	points := createPoints(4.0, -2.0, 7.5, 0.0, 3.25)

	assertPointEqual(t, FromFloat64(-2.0), Min(points), 0.0001, "Min")
	assertPointEqual(t, FromFloat64(7.5), Max(points), 0.0001, "Max")

	if !Min(nil).IsZero() || !Max(nil).IsZero() {
		t.Error("empty slice min/max should be zero")
	}
}
