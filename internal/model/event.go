package model

import "main/internal/model/enum"

// Event is one record of the output stream. Events are transient: built from
// a push frame, written to the sink, discarded. Nothing retains them and no
// ordering across events is guaranteed; the timestamp may come from a
// wall-clock fallback when the exchange omits its own (see the normalizer).
type Event struct {
	TsNano   int64
	Kind     enum.EventKind
	Side     enum.Side
	Price    Price
	Quantity Quantity
}
