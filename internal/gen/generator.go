package gen

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"main/internal/model"
	"main/internal/model/enum"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/decimal"
	"github.com/yanun0323/errors"
)

// Scenario bounds the synthetic walk. Prices and quantities ride on decimal
// fields so a scenario file carries exact values instead of float literals.
type Scenario struct {
	StartPrice decimal.Decimal `json:"start_price"`
	MaxQty     decimal.Decimal `json:"max_qty"`
	TickRange  int64           `json:"tick_range"`
}

const defaultScenarioJSON = `{"start_price":"50000.00","max_qty":"0.250","tick_range":25}`

// DefaultScenario is a plausible BTCUSDT-shaped tape.
func DefaultScenario() Scenario {
	var sc Scenario
	if err := sonic.ConfigFastest.Unmarshal([]byte(defaultScenarioJSON), &sc); err != nil {
		panic(err)
	}
	return sc
}

// LoadScenario reads a scenario from a JSON file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "read scenario %s", path)
	}
	var sc Scenario
	if err := sonic.ConfigFastest.Unmarshal(data, &sc); err != nil {
		return Scenario{}, errors.Wrap(err, "unmarshal scenario")
	}
	return sc, nil
}

// Generator emits a deterministic synthetic trade tape for soaking the
// downstream consumer without a live exchange connection. The same seed and
// scenario always produce the same sequence.
type Generator struct {
	rng       *rand.Rand
	price     model.Price
	maxQty    model.Quantity
	tickRange int64
}

func New(seed int64, sc Scenario) (*Generator, error) {
	price, err := scaledPrice(sc.StartPrice)
	if err != nil {
		return nil, err
	}
	maxQty, err := scaledQty(sc.MaxQty)
	if err != nil {
		return nil, err
	}
	if price <= 0 || maxQty <= 0 {
		return nil, errors.New("scenario price and qty must be positive")
	}
	tickRange := sc.TickRange
	if tickRange <= 0 {
		tickRange = 1
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		price:     price,
		maxQty:    maxQty,
		tickRange: tickRange,
	}, nil
}

// Next produces the next trade of the tape, stamped with the caller's clock.
func (g *Generator) Next(now time.Time) model.Event {
	step := g.rng.Int63n(2*g.tickRange+1) - g.tickRange
	g.price += model.Price(step)
	if g.price < 1 {
		g.price = 1
	}

	side := enum.SideSell
	if g.rng.Intn(2) == 0 {
		side = enum.SideBuy
	}

	return model.Event{
		TsNano:   now.UnixMilli() * int64(time.Millisecond),
		Kind:     enum.EventKindTrade,
		Side:     side,
		Price:    g.price,
		Quantity: model.Quantity(g.rng.Int63n(int64(g.maxQty)) + 1),
	}
}

func scaledPrice(d decimal.Decimal) (model.Price, error) {
	v, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse scenario price")
	}
	return model.PriceFromFloat(v), nil
}

func scaledQty(d decimal.Decimal) (model.Quantity, error) {
	v, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse scenario qty")
	}
	return model.QuantityFromFloat(v), nil
}
