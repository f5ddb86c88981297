package main

const (
	DefaultSamplesTable = "gaze_samples"
)
