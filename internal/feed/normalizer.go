package feed

import (
	"strconv"
	"time"

	"main/internal/ingest/bybit"
	"main/internal/model"
	"main/internal/model/enum"

	"github.com/bytedance/sonic"
)

// Normalizer converts publicTrade push frames into output events.
type Normalizer struct {
	topic string
	now   func() time.Time
}

func NewNormalizer(topic string) *Normalizer {
	return &Normalizer{topic: topic, now: time.Now}
}

// NormalizeFrame extracts the trade prints of one frame, in payload order.
// Frames from other topics, control frames and frames whose body does not
// parse yield no events. An entry with a non-numeric price or quantity is
// dropped without touching its siblings; a zero quantity is a valid print
// and stays in.
func (n *Normalizer) NormalizeFrame(raw []byte) []model.Event {
	var frame bybit.TradeFrame
	if err := sonic.ConfigFastest.Unmarshal(raw, &frame); err != nil {
		return nil
	}
	if frame.Topic != n.topic {
		return nil
	}

	events := make([]model.Event, 0, len(frame.Data))
	for _, entry := range frame.Data {
		ev, ok := n.normalizeEntry(entry)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (n *Normalizer) normalizeEntry(entry bybit.TradeEntry) (model.Event, bool) {
	price, err := strconv.ParseFloat(entry.PriceLabel(), 64)
	if err != nil {
		return model.Event{}, false
	}
	qty, err := strconv.ParseFloat(entry.QtyLabel(), 64)
	if err != nil {
		return model.Event{}, false
	}

	var tsMs int64
	if entry.TradeTimeMs != nil {
		tsMs = *entry.TradeTimeMs
	} else {
		// The exchange omitted its timestamp. Local wall-clock milliseconds
		// keep the record usable, but the value is not exchange-authoritative
		// and can land behind lines already emitted. An explicit zero is
		// passed through untouched.
		tsMs = n.now().UnixMilli()
	}

	return model.Event{
		TsNano:   tsMs * int64(time.Millisecond),
		Kind:     enum.EventKindTrade,
		Side:     enum.SideFromLabel(entry.SideLabel()),
		Price:    model.PriceFromFloat(price),
		Quantity: model.QuantityFromFloat(qty),
	}, true
}
