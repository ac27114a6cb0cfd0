// Package rabbitmq provides the broker-backed messaging adapters: the SMS
// notification queue and the live rider location relay.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds the connection settings for the broker.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

// Client wraps one AMQP connection with a shared publishing channel.
// Publishing is serialized with a mutex since AMQP channels are not safe for
// concurrent use; subscribers open their own channels off the connection.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// Dial connects to the broker and opens the publishing channel.
func Dial(cfg Config) (*Client, error) {
	if cfg.VHost == "" {
		cfg.VHost = "/"
	}
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.VHost)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Ping reports whether the connection is still open.
func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close shuts down the publishing channel and the connection.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// publish sends one persistent JSON message on the shared channel.
func (c *Client) publish(ctx context.Context, exchange, key string, body []byte, persistent bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mode := amqp.Transient
	if persistent {
		mode = amqp.Persistent
	}

	return c.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: mode,
		ContentType:  "application/json",
		Body:         body,
	})
}

// channel opens a dedicated channel for a consumer.
func (c *Client) channel() (*amqp.Channel, error) {
	if err := c.Ping(); err != nil {
		return nil, err
	}
	return c.conn.Channel()
}
