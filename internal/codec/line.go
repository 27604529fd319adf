package codec

import (
	"bytes"
	"strconv"

	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

// Line format shared with the downstream consumer:
//
//	<ts_ns>,<kind>,<side>,<price_scaled>,<qty_scaled>\n
//
// kind is T/A/C, side is B/S, prices and quantities are scaled integers.
// The encoder and the parser must stay in lockstep; both live here so the
// adapters, the generator and the stat tool share one grammar.

const fieldCount = 5

// AppendEvent appends the encoded record for ev, newline included.
func AppendEvent(dst []byte, ev model.Event) []byte {
	dst = strconv.AppendInt(dst, ev.TsNano, 10)
	dst = append(dst, ',')
	dst = append(dst, ev.Kind.Char())
	dst = append(dst, ',')
	dst = append(dst, ev.Side.Char())
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(ev.Price), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(ev.Quantity), 10)
	dst = append(dst, '\n')
	return dst
}

// ParseEvent decodes one record line. A trailing newline is tolerated.
func ParseEvent(line []byte) (model.Event, error) {
	line = bytes.TrimSuffix(line, []byte{'\n'})

	var ev model.Event
	fields := bytes.Split(line, []byte{','})
	if len(fields) != fieldCount {
		return ev, exception.ErrMalformedRecord
	}

	tsNano, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return ev, exception.ErrMalformedRecord
	}

	if len(fields[1]) != 1 {
		return ev, exception.ErrMalformedRecord
	}
	kind, ok := enum.ParseEventKind(fields[1][0])
	if !ok {
		return ev, exception.ErrMalformedRecord
	}

	// Side keeps the coarse grammar of the reader on the far side of the
	// pipe: leading 'b'/'B' is a buy, anything else a sell.
	ev.Side = enum.SideFromLabel(string(fields[2]))

	price, err := strconv.ParseInt(string(fields[3]), 10, 64)
	if err != nil {
		return ev, exception.ErrMalformedRecord
	}
	qty, err := strconv.ParseInt(string(fields[4]), 10, 64)
	if err != nil {
		return ev, exception.ErrMalformedRecord
	}

	ev.TsNano = tsNano
	ev.Kind = kind
	ev.Price = model.Price(price)
	ev.Quantity = model.Quantity(qty)
	return ev, nil
}
