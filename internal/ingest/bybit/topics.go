package bybit

import "strconv"

const (
	// DefaultURL is the Bybit v5 public spot market stream.
	DefaultURL = "wss://stream.bybit.com/v5/public/spot"
)

// TradeTopic names the public trade channel for a symbol, e.g.
// "publicTrade.BTCUSDT".
func TradeTopic(symbol string) string {
	return "publicTrade." + symbol
}

// OrderbookTopic names the order book delta channel for a symbol at a given
// depth, e.g. "orderbook.50.BTCUSDT".
func OrderbookTopic(depth int, symbol string) string {
	return "orderbook." + strconv.Itoa(depth) + "." + symbol
}
