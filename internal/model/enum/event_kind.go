package enum

// EventKind tags an output record for the downstream line protocol.
type EventKind uint8

const (
	_event_kind_beg EventKind = iota
	EventKindTrade
	EventKindAdd
	EventKindCancel
	_event_kind_end
)

func (k EventKind) IsAvailable() bool {
	return k > _event_kind_beg && k < _event_kind_end
}

// Char returns the record tag used on the wire.
func (k EventKind) Char() byte {
	switch k {
	case EventKindTrade:
		return 'T'
	case EventKindAdd:
		return 'A'
	case EventKindCancel:
		return 'C'
	default:
		return '?'
	}
}

// ParseEventKind maps a record tag back to its kind.
func ParseEventKind(c byte) (EventKind, bool) {
	switch c {
	case 'T':
		return EventKindTrade, true
	case 'A':
		return EventKindAdd, true
	case 'C':
		return EventKindCancel, true
	default:
		return 0, false
	}
}
