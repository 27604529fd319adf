package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"main/internal/codec"
	"main/internal/model"
	"main/internal/model/enum"
)

// feedstat consumes an event stream on stdin and prints tape statistics.
// Pipe an adapter or feedgen into it:
//
//	trades | feedstat -every 1000
type tapeStats struct {
	count      int64
	skipped    int64
	buyVolume  model.Quantity
	sellVolume model.Quantity
	minPrice   model.Price
	maxPrice   model.Price
	lastPrice  model.Price
}

func (s *tapeStats) update(ev model.Event) {
	s.count++
	s.lastPrice = ev.Price
	if s.count == 1 || ev.Price < s.minPrice {
		s.minPrice = ev.Price
	}
	if ev.Price > s.maxPrice {
		s.maxPrice = ev.Price
	}
	if ev.Side == enum.SideBuy {
		s.buyVolume += ev.Quantity
	} else {
		s.sellVolume += ev.Quantity
	}
}

func (s *tapeStats) print(w *os.File) {
	fmt.Fprintf(w, "trades=%d skipped=%d last=%s min=%s max=%s buy_vol=%s sell_vol=%s\n",
		s.count, s.skipped,
		s.lastPrice.String(), s.minPrice.String(), s.maxPrice.String(),
		s.buyVolume.String(), s.sellVolume.String(),
	)
}

func main() {
	every := flag.Int64("every", 0, "Print running stats every N trades (0=only at EOF)")
	flag.Parse()

	var stats tapeStats
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		ev, err := codec.ParseEvent(line)
		if err != nil || ev.Kind != enum.EventKindTrade {
			// The stream legitimately carries non-trade records and, on the
			// order book pipe, raw JSON; count and move on.
			stats.skipped++
			continue
		}
		stats.update(ev)
		if *every > 0 && stats.count%*every == 0 {
			stats.print(os.Stderr)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	stats.print(os.Stdout)
}
