package feed

import (
	"bytes"
	"context"
	"errors"
	"time"

	"main/internal/codec"
	"main/internal/ingest/bybit"
	"main/internal/sink"
	"main/pkg/exception"

	"github.com/yanun0323/logs"
)

// RetryConfig controls optional reconnect-on-disconnect. Disabled is the
// documented default: downstream consumers treat process exit as the
// disconnect signal, so redialing has to be an explicit opt-in.
type RetryConfig struct {
	Enabled        bool
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Config wires one adapter run.
type Config struct {
	URL    string
	Topics []string
	Retry  RetryConfig
}

// FrameReader yields raw frames one at a time.
type FrameReader interface {
	ReadFrame() ([]byte, error)
}

// Pump moves frames from one live connection into the sink until the stream
// ends. It returns exception.ErrWebSocketConnectionClose on a clean remote
// close, sink.ErrPipeClosed when the downstream reader went away, and a
// transport error otherwise.
type Pump func(ctx context.Context, r FrameReader, out sink.LineSink) error

// Run drives one adapter process: dial, subscribe, pump. The loop has a
// single suspension point, the pending frame read; interrupt handling works
// by cancelling ctx, which closes the connection under the reader.
func Run(ctx context.Context, cfg Config, out sink.LineSink, pump Pump) error {
	retry := newBackoff(cfg.Retry.InitialBackoff, cfg.Retry.MaxBackoff)
	for {
		connected, err := runOnce(ctx, cfg, out, pump)
		switch {
		case err == nil || ctx.Err() != nil:
			return nil
		case errors.Is(err, sink.ErrPipeClosed):
			// Nobody is reading anymore. Exit without a word: anything
			// written here would just be noise in a dead pipeline.
			return nil
		case errors.Is(err, exception.ErrWebSocketConnectionClose):
			if !cfg.Retry.Enabled {
				return nil
			}
		default:
			if !cfg.Retry.Enabled {
				return err
			}
		}

		// A session that actually connected pays the initial backoff again,
		// not whatever earlier failures accumulated.
		if connected {
			retry.reset()
		}
		wait := retry.next()
		logs.Errorf("stream ended, redialing in %s, err: %+v", wait, err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// backoff yields the wait before each redial, doubling up to a cap.
type backoff struct {
	initial time.Duration
	max     time.Duration
	cur     time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	if initial <= 0 {
		initial = time.Second
	}
	return &backoff{initial: initial, max: max, cur: initial}
}

func (b *backoff) next() time.Duration {
	d := b.cur
	b.cur *= 2
	if b.max > 0 && b.cur > b.max {
		b.cur = b.max
	}
	return d
}

func (b *backoff) reset() { b.cur = b.initial }

func runOnce(ctx context.Context, cfg Config, out sink.LineSink, pump Pump) (connected bool, err error) {
	client := bybit.NewClient(cfg.URL)
	if err := client.Dial(ctx); err != nil {
		return false, err
	}
	defer client.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = client.Close()
		case <-done:
		}
	}()

	if err := client.Subscribe(cfg.Topics...); err != nil {
		return true, err
	}

	err = pump(ctx, client, out)
	if ctx.Err() != nil {
		return true, nil
	}
	return true, err
}

// TradePump builds the trade adapter pump: each frame becomes zero or more
// encoded lines, one per valid trade print, in payload order.
func TradePump(n *Normalizer) Pump {
	return func(ctx context.Context, r FrameReader, out sink.LineSink) error {
		buf := make([]byte, 0, 64)
		for {
			raw, err := r.ReadFrame()
			if err != nil {
				return err
			}
			for _, ev := range n.NormalizeFrame(raw) {
				buf = codec.AppendEvent(buf[:0], ev)
				if err := out.WriteLine(buf); err != nil {
					return err
				}
			}
		}
	}
}

// OrderbookPump builds the order book pump: pure passthrough, one output
// line per frame. Subscription acks and other control frames go out exactly
// like delta frames; downstream may rely on seeing them, so nothing is
// filtered here.
func OrderbookPump() Pump {
	return func(ctx context.Context, r FrameReader, out sink.LineSink) error {
		for {
			raw, err := r.ReadFrame()
			if err != nil {
				return err
			}
			line := append(bytes.TrimSpace(raw), '\n')
			if err := out.WriteLine(line); err != nil {
				return err
			}
		}
	}
}
