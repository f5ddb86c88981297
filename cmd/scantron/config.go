package main

const (
	DefaultItemValue          = 1
	DefaultIncorrectThreshold = 0.5
)
