package enum

// Side is the aggressor direction of a trade.
type Side uint8

const (
	SideBuy Side = iota + 1
	SideSell
)

// Char returns the side tag used on the wire.
func (s Side) Char() byte {
	if s == SideBuy {
		return 'B'
	}
	return 'S'
}

// SideFromLabel classifies an exchange side label. Any label whose lowercase
// form starts with 'b' counts as a buy; everything else, including an empty
// or unknown label, counts as a sell. This coarse rule tolerates the label
// casings the exchange has shipped over time.
func SideFromLabel(label string) Side {
	if len(label) > 0 && (label[0] == 'b' || label[0] == 'B') {
		return SideBuy
	}
	return SideSell
}
