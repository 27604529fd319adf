package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

// Fake exchange endpoint for local adapter runs: accepts the subscription
// handshake, acknowledges it, then pushes canned publicTrade and orderbook
// frames for every subscribed topic. Point an adapter at it with
// feed.ws_url: ws://localhost:8700/v5/public/spot.
func main() {
	addr := flag.String("addr", "localhost:8700", "listen address")
	interval := flag.Duration("interval", 250*time.Millisecond, "delay between pushed frames")
	flag.Parse()

	upgrader := websocket.Upgrader{}
	http.HandleFunc("/v5/public/spot", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		serve(conn, *interval)
	})

	log.Printf("fake exchange listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

type subscribeRequest struct {
	Op   string   `json:"op"`
	Args []string `json:"args"`
}

func serve(conn *websocket.Conn, interval time.Duration) {
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return
	}
	var req subscribeRequest
	if err := sonic.ConfigFastest.Unmarshal(raw, &req); err != nil || req.Op != "subscribe" {
		log.Printf("unexpected handshake: %s", raw)
		return
	}

	ack := fmt.Sprintf(`{"success":true,"ret_msg":"","conn_id":"fake-%d","op":"subscribe"}`, time.Now().UnixNano())
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ack)); err != nil {
		return
	}

	seq := 0
	for {
		for _, topic := range req.Args {
			if err := conn.WriteMessage(websocket.TextMessage, frameFor(topic, seq)); err != nil {
				return
			}
		}
		seq++
		time.Sleep(interval)
	}
}

func frameFor(topic string, seq int) []byte {
	ts := time.Now().UnixMilli()
	price := 50000 + seq%100
	switch {
	case strings.HasPrefix(topic, "publicTrade."):
		side := "Buy"
		if seq%2 == 1 {
			side = "Sell"
		}
		return []byte(fmt.Sprintf(
			`{"topic":"%s","type":"snapshot","ts":%d,"data":[{"T":%d,"s":"%s","S":"%s","v":"0.005","p":"%d.12","L":"PlusTick","i":"fake-%d","BT":false}]}`,
			topic, ts, ts, topic[len("publicTrade."):], side, price, seq,
		))
	default:
		return []byte(fmt.Sprintf(
			`{"topic":"%s","type":"delta","ts":%d,"data":{"s":"BTCUSDT","b":[["%d","1.5"]],"a":[["%d","2"]],"u":%d,"seq":%d}}`,
			topic, ts, price, price+1, seq, seq,
		))
	}
}
