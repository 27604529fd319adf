package codec

import (
	"testing"

	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendEvent(t *testing.T) {
	ev := model.Event{
		TsNano:   1690000000000000000,
		Kind:     enum.EventKindTrade,
		Side:     enum.SideBuy,
		Price:    5000011,
		Quantity: 5,
	}
	line := AppendEvent(nil, ev)
	assert.Equal(t, "1690000000000000000,T,B,5000011,5\n", string(line))
}

func TestAppendEventReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	first := AppendEvent(buf, model.Event{Kind: enum.EventKindTrade, Side: enum.SideSell})
	assert.Equal(t, "0,T,S,0,0\n", string(first))

	second := AppendEvent(first[:0], model.Event{
		TsNano:   1,
		Kind:     enum.EventKindAdd,
		Side:     enum.SideBuy,
		Price:    95,
		Quantity: 10,
	})
	assert.Equal(t, "1,A,B,95,10\n", string(second))
}

func TestParseEventRoundTrip(t *testing.T) {
	orig := model.Event{
		TsNano:   1690000000123000000,
		Kind:     enum.EventKindTrade,
		Side:     enum.SideSell,
		Price:    1234567,
		Quantity: 0,
	}
	parsed, err := ParseEvent(AppendEvent(nil, orig))
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)
}

func TestParseEventMalformed(t *testing.T) {
	cases := []string{
		"",
		"1690000000000000000",
		"1690000000000000000,T,B,5000011",
		"1690000000000000000,T,B,5000011,5,extra",
		"abc,T,B,5000011,5",
		"1690000000000000000,X,B,5000011,5",
		"1690000000000000000,TT,B,5000011,5",
		"1690000000000000000,T,B,px,5",
		"1690000000000000000,T,B,5000011,qty",
	}
	for _, c := range cases {
		_, err := ParseEvent([]byte(c))
		assert.ErrorIs(t, err, exception.ErrMalformedRecord, "line %q", c)
	}
}
