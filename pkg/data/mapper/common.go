package mapper

import (
	"time"

	"github.com/tomas-kadlec/gazelab/pkg/gaze"
)

// BinarySample is the on-disk record layout for coded gaze recordings.
// Fields must stay unpadded so the reader can cast records directly.
type BinarySample struct {
	TimeStamp int64
	Value     float64
}

func (binarySample BinarySample) ToGazeSample(sample *gaze.Sample) {
	sample.TimeStamp = time.Unix(0, binarySample.TimeStamp)
	sample.Value = binarySample.Value
}
