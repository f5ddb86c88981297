package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tomas-kadlec/gazelab/internal/dbg"
	"github.com/tomas-kadlec/gazelab/pkg/data/duckdb"
	"github.com/tomas-kadlec/gazelab/pkg/data/mapper"
	"github.com/tomas-kadlec/gazelab/pkg/gaze"
)

func main() {
	fileA := flag.String("a", "", "binary recording of person 1")
	fileB := flag.String("b", "", "binary recording of person 2")
	dbPath := flag.String("db", "", "duckdb database with gaze samples")
	table := flag.String("table", DefaultSamplesTable, "samples table name")
	session := flag.String("session", "", "recording session id")
	subjectA := flag.String("subject1", "", "subject id of person 1")
	subjectB := flag.String("subject2", "", "subject id of person 2")
	framerate := flag.Int("framerate", gaze.DefaultFramerate, "eye tracker frames per second")
	seconds := flag.Int("seconds", gaze.DefaultConstrainSeconds, "lag window in seconds on each side of zero")
	correlogram := flag.Bool("correlogram", false, "log every correlogram entry")
	flag.Parse()

	logger := dbg.NewDevLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	person1, person2, err := loadSeries(ctx, *fileA, *fileB, *dbPath, *table, *session, *subjectA, *subjectB)
	if err != nil {
		logger.Fatal("error loading gaze series", zap.Error(err))
	}
	logger.Info("loaded gaze series",
		zap.Int("person1_frames", len(person1)),
		zap.Int("person2_frames", len(person2)))

	result, err := gaze.CrossCorrelation(person1, person2, *framerate, *seconds)
	if err != nil {
		logger.Fatal("cross correlation failed", zap.Error(err))
	}

	logger.Info("cross correlation",
		zap.Int("best_lag", result.BestLag),
		zap.Float64("best_value", result.BestValue),
		zap.Float64("zero_lag_value", result.ZeroLagValue),
		zap.Int("entries", len(result.Entries)))

	if *correlogram {
		for _, e := range result.Entries {
			logger.Info("correlogram entry", zap.Int("lag", e.Lag), zap.Float64("value", e.Value))
		}
	}
}

func loadSeries(ctx context.Context, fileA, fileB, dbPath, table, session, subjectA, subjectB string) ([]float64, []float64, error) {
	if fileA != "" && fileB != "" {
		recordingA, err := mapper.LoadRecording(fileA)
		if err != nil {
			return nil, nil, err
		}
		recordingB, err := mapper.LoadRecording(fileB)
		if err != nil {
			return nil, nil, err
		}
		return gaze.Values(recordingA), gaze.Values(recordingB), nil
	}

	if dbPath != "" {
		if session == "" || subjectA == "" || subjectB == "" {
			return nil, nil, errors.New("-session, -subject1 and -subject2 are required with -db")
		}

		r := duckdb.NewReader(dbPath)
		if err := r.Connect(); err != nil {
			return nil, nil, err
		}
		defer r.Close()

		person1, err := r.LoadSeries(ctx, table, session, subjectA)
		if err != nil {
			return nil, nil, err
		}
		person2, err := r.LoadSeries(ctx, table, session, subjectB)
		if err != nil {
			return nil, nil, err
		}
		return person1, person2, nil
	}

	return nil, nil, errors.New("either -a and -b or -db is required")
}
