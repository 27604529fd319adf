package bybit

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeRequestWire(t *testing.T) {
	payload, err := sonic.ConfigFastest.Marshal(SubscribeRequest{
		Op:   "subscribe",
		Args: []string{"publicTrade.BTCUSDT"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"op":"subscribe","args":["publicTrade.BTCUSDT"]}`, string(payload))
}

func TestTradeFrameDecode(t *testing.T) {
	raw := `{"topic":"publicTrade.BTCUSDT","type":"snapshot","ts":1690000000100,
		"data":[{"T":1690000000000,"s":"BTCUSDT","S":"Buy","v":"0.005","p":"50000.12","L":"PlusTick","i":"abc","BT":false}]}`

	var frame TradeFrame
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(raw), &frame))

	assert.Equal(t, "publicTrade.BTCUSDT", frame.Topic)
	require.Len(t, frame.Data, 1)

	entry := frame.Data[0]
	require.NotNil(t, entry.TradeTimeMs)
	assert.Equal(t, int64(1690000000000), *entry.TradeTimeMs)
	assert.Equal(t, "Buy", entry.SideLabel())
	assert.Equal(t, "50000.12", entry.PriceLabel())
	assert.Equal(t, "0.005", entry.QtyLabel())
}

func TestTradeEntryKeyVariants(t *testing.T) {
	// Older payload generation: side under "s", quantity under "q".
	raw := `{"s":"Sell","q":"1.5","p":"100"}`
	var entry TradeEntry
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(raw), &entry))
	assert.Equal(t, "Sell", entry.SideLabel())
	assert.Equal(t, "1.5", entry.QtyLabel())

	// "S" wins over "s" when both appear.
	raw = `{"S":"Buy","s":"BTCUSDT","v":"2","q":"3"}`
	entry = TradeEntry{}
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(raw), &entry))
	assert.Equal(t, "Buy", entry.SideLabel())
	assert.Equal(t, "2", entry.QtyLabel())
}

func TestTradeEntryDefaults(t *testing.T) {
	var entry TradeEntry
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(`{}`), &entry))
	assert.Equal(t, "", entry.SideLabel())
	assert.Equal(t, "0", entry.QtyLabel())
	assert.Equal(t, "0", entry.PriceLabel())
	assert.Nil(t, entry.TradeTimeMs)
}

func TestTradeEntryExplicitZeroTime(t *testing.T) {
	var entry TradeEntry
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(`{"T":0,"S":"Buy"}`), &entry))
	require.NotNil(t, entry.TradeTimeMs)
	assert.Equal(t, int64(0), *entry.TradeTimeMs)
}

func TestControlFrameDecodesToZeroValue(t *testing.T) {
	raw := `{"success":true,"ret_msg":"","conn_id":"abc","op":"subscribe"}`
	var frame TradeFrame
	require.NoError(t, sonic.ConfigFastest.Unmarshal([]byte(raw), &frame))
	assert.Empty(t, frame.Topic)
	assert.Empty(t, frame.Data)
}
