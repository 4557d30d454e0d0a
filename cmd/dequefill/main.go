// Command dequefill measures how fast a SliceDeque over a preallocated
// buffer can be filled to capacity and drained again.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/deque"
)

type Options struct {
	BufLen  uint
	Rounds  uint
	Verbose bool
}

func main() {
	var opts Options
	flag.UintVar(&opts.BufLen, "buf-len", 8*1024*1024, "Length of the backing buffer, i.e. the deque capacity")
	flag.UintVar(&opts.Rounds, "rounds", 5, "Number of fill+drain rounds to run")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	buf := make([]uint64, opts.BufLen)
	logger.WithFields(logrus.Fields{
		"buf_len": opts.BufLen,
		"rounds":  opts.Rounds,
	}).Info("Starting fill+drain rounds")

	for round := uint(1); round <= opts.Rounds; round++ {
		fillElapsed, drainElapsed := runRound(logger, buf)
		logger.WithFields(logrus.Fields{
			"round":     round,
			"fill_ns":   fillElapsed.Nanoseconds(),
			"drain_ns":  drainElapsed.Nanoseconds(),
			"fill_ms":   fillElapsed.Milliseconds(),
			"drain_ms":  drainElapsed.Milliseconds(),
			"ns_per_op": float64(fillElapsed.Nanoseconds()) / float64(len(buf)),
		}).Info("Round finished")
	}
}

func runRound(logger *logrus.Logger, buf []uint64) (fillElapsed, drainElapsed time.Duration) {
	start := time.Now()

	d := deque.NewIn(buf)
	for i := 0; i < d.Cap(); i++ {
		err := d.PushBack(uint64(i))
		if err != nil {
			logger.WithError(err).WithField("i", i).Fatal("Push failed before reaching capacity")
		}
	}
	fillElapsed = time.Since(start)

	if !d.IsFull() {
		logger.Fatal("Deque not full after filling to capacity")
	}

	start = time.Now()
	var sum uint64
	for item, ok := d.PopFront(); ok; item, ok = d.PopFront() {
		sum += item
	}
	drainElapsed = time.Since(start)

	logger.WithField("checksum", sum).Debug("Drained deque")
	return fillElapsed, drainElapsed
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.BufLen == 0 {
		logger.Error("--buf-len must be greater than zero")
		flag.Usage()
		os.Exit(1)
	}
	if opts.Rounds == 0 {
		logger.Error("--rounds must be greater than zero")
		flag.Usage()
		os.Exit(1)
	}
}
