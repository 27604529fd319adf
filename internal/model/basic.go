package model

import "strconv"

// Fixed power-of-ten factors shared with the downstream consumer. A raised
// factor here must be mirrored on the reader side of the pipe.
const (
	PriceScale    = 100
	QuantityScale = 1000

	priceScaleDigits    = 2
	quantityScaleDigits = 3
)

// Price is a scaled integer: the exchange price multiplied by PriceScale and
// truncated toward zero.
type Price int64

// PriceFromFloat scales through float64 on purpose: values carrying binary
// representation error must truncate exactly as hardware float arithmetic
// does, not round.
func PriceFromFloat(v float64) Price {
	return Price(v * PriceScale)
}

func (p Price) AppendString(buf []byte) []byte {
	return appendScaledInt(buf, int64(p), priceScaleDigits)
}

func (p Price) String() string {
	return string(p.AppendString(nil))
}

// Quantity is a scaled integer: the exchange quantity multiplied by
// QuantityScale and truncated toward zero.
type Quantity int64

// QuantityFromFloat scales through float64, truncating toward zero. See
// PriceFromFloat.
func QuantityFromFloat(v float64) Quantity {
	return Quantity(v * QuantityScale)
}

func (q Quantity) AppendString(buf []byte) []byte {
	return appendScaledInt(buf, int64(q), quantityScaleDigits)
}

func (q Quantity) String() string {
	return string(q.AppendString(nil))
}

func appendScaledInt(buf []byte, value int64, scale int) []byte {
	if scale <= 0 {
		return strconv.AppendInt(buf, value, 10)
	}

	neg := value < 0
	u := uint64(value)
	if neg {
		u = uint64(^value) + 1
	}

	var tmp [32]byte
	digits := strconv.AppendUint(tmp[:0], u, 10)

	if neg {
		buf = append(buf, '-')
	}

	if len(digits) <= scale {
		buf = append(buf, '0', '.')
		for i := 0; i < scale-len(digits); i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
		return buf
	}

	idx := len(digits) - scale
	buf = append(buf, digits[:idx]...)
	buf = append(buf, '.')
	buf = append(buf, digits[idx:]...)
	return buf
}
