package main

import (
	"encoding/binary"
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tomas-kadlec/gazelab/pkg/data/mapper"
)

// dumpSamples converts a CSV export of coded gaze frames (timestamp,
// value) into the binary record format the analysis tools mmap.
func dumpSamples(csvPath string, binFile *os.File) error {
	csvFile, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer func(csvFile *os.File) {
		_ = csvFile.Close()
	}(csvFile)

	reader := csv.NewReader(csvFile)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		ts, err := time.Parse(time.RFC3339Nano, record[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return err
		}

		sample := mapper.BinarySample{
			TimeStamp: ts.UnixNano(),
			Value:     value,
		}
		if err := binary.Write(binFile, binary.LittleEndian, sample); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	input := flag.String("input", "", "csv export of coded gaze frames")
	output := flag.String("output", "", "binary recording to create")
	flag.Parse()

	if *input == "" || *output == "" {
		slog.Error("-input and -output are required")
		os.Exit(1)
	}

	binFile, err := os.Create(*output)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer func(binFile *os.File) {
		_ = binFile.Close()
	}(binFile)

	if err := dumpSamples(*input, binFile); err != nil {
		_ = os.Remove(*output)
		slog.Error("failed to dump", "input", *input, "error", err)
		os.Exit(1)
	}

	slog.Info("dump finished", "input", *input, "output", *output)
}
