package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/internal/codec"
	"main/internal/gen"
	"main/internal/sink"
)

// feedgen writes a synthetic trade tape in the adapter line format, for
// soaking a downstream consumer without a live exchange connection.
func main() {
	count := flag.Int("count", 1000, "Number of events to emit (0=unbounded)")
	seed := flag.Int64("seed", 1, "Random seed; same seed, same tape")
	interval := flag.Duration("interval", 0, "Delay between events (0=as fast as possible)")
	scenarioPath := flag.String("scenario", "", "Path to JSON scenario (optional)")
	flag.Parse()

	scenario := gen.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := gen.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario load failed: %v", err)
		}
		scenario = loaded
	}

	generator, err := gen.New(*seed, scenario)
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	out := sink.NewStdout()
	buf := make([]byte, 0, 64)
	for i := 0; *count == 0 || i < *count; i++ {
		buf = codec.AppendEvent(buf[:0], generator.Next(time.Now()))
		if err := out.WriteLine(buf); err != nil {
			if errors.Is(err, sink.ErrPipeClosed) {
				return
			}
			log.Fatalf("write failed: %v", err)
		}
		if *interval > 0 {
			time.Sleep(*interval)
		}
	}
}
