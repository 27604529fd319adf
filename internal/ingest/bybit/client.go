package bybit

import (
	"context"

	"main/pkg/exception"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Client owns exactly one websocket connection to the public market stream
// for its lifetime. Transport concerns (framing, TLS, ping/pong) stay inside
// the websocket library; this type only dials, subscribes and hands frames
// to the caller one at a time.
type Client struct {
	url  string
	conn *websocket.Conn
}

func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{url: url}
}

// Dial opens the connection. It does not subscribe.
func (c *Client) Dial(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return errors.Wrapf(err, "dial %s", c.url)
	}
	c.conn = conn
	logs.Infof("connected to %s", c.url)
	return nil
}

// Subscribe sends the subscription handshake and returns without waiting for
// the acknowledgement: the ack arrives as an ordinary frame on the stream,
// and the order book adapter forwards it downstream like any other frame.
func (c *Client) Subscribe(topics ...string) error {
	if c.conn == nil {
		return exception.ErrWebSocketProtocol
	}
	payload, err := sonic.ConfigFastest.Marshal(SubscribeRequest{
		Op:   "subscribe",
		Args: topics,
	})
	if err != nil {
		return errors.Wrap(err, "marshal subscribe request")
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return errors.Wrap(err, "send subscribe request")
	}
	logs.Infof("subscribed: %v", topics)
	return nil
}

// ReadFrame blocks until the next frame arrives and returns its raw bytes.
// There is no read deadline: a connection that stays open but goes silent
// blocks forever, matching the documented receive contract. A clean remote
// close maps to exception.ErrWebSocketConnectionClose; every other failure
// is a transport error.
func (c *Client) ReadFrame() ([]byte, error) {
	if c.conn == nil {
		return nil, exception.ErrWebSocketProtocol
	}
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, exception.ErrWebSocketConnectionClose
		}
		return nil, errors.Wrap(err, "read frame")
	}
	return data, nil
}

// Close tears the connection down. Safe to call from another goroutine to
// unblock a pending ReadFrame.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
