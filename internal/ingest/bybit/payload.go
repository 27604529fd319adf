package bybit

// SubscribeRequest is the handshake sent right after dialing.
type SubscribeRequest struct {
	Op   string   `json:"op"`
	Args []string `json:"args"`
}

// TradeFrame is one publicTrade push message. Control frames (subscription
// acks, pongs) decode into the zero value: empty topic, no data.
type TradeFrame struct {
	Topic string       `json:"topic"`
	Type  string       `json:"type"`
	Ts    int64        `json:"ts"`
	Data  []TradeEntry `json:"data"`
}

// TradeEntry is one trade print. The exchange has shipped more than one
// generation of key names, so the side and quantity carry both variants and
// are resolved through the accessor methods, exact-match tags keeping the
// two apart.
type TradeEntry struct {
	// TradeTimeMs is nil when the frame carried no "T" key at all, so the
	// consumer can tell an omitted timestamp from an explicit zero.
	TradeTimeMs *int64 `json:"T"`
	Side        string `json:"S"`
	SideAlt     string `json:"s"`
	Price       string `json:"p"`
	Qty         string `json:"v"`
	QtyAlt      string `json:"q"`
}

// SideLabel returns the side under whichever key variant the frame used.
// Both absent yields the empty string, which classifies as a sell.
func (e TradeEntry) SideLabel() string {
	if e.Side != "" {
		return e.Side
	}
	return e.SideAlt
}

// QtyLabel returns the quantity under whichever key variant the frame used,
// "0" when both are absent.
func (e TradeEntry) QtyLabel() string {
	if e.Qty != "" {
		return e.Qty
	}
	if e.QtyAlt != "" {
		return e.QtyAlt
	}
	return "0"
}

// PriceLabel returns the price, "0" when absent.
func (e TradeEntry) PriceLabel() string {
	if e.Price != "" {
		return e.Price
	}
	return "0"
}
