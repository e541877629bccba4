package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client publishes journal-posted events and consumes business events on a
// durable direct exchange.
type Client struct {
	conn             *amqp091.Connection
	channel          *amqp091.Channel
	exchangeName     string
	eventsQueue      string
	postedRoutingKey string
}

var _ portsrepo.EventPublisher = (*Client)(nil)

// NewClient dials url, declares the exchange and the events queue and binds
// the queue using its own name as routing key.
func NewClient(url, exchangeName, eventsQueue, postedRoutingKey string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:             conn,
		channel:          channel,
		exchangeName:     exchangeName,
		eventsQueue:      eventsQueue,
		postedRoutingKey: postedRoutingKey,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.eventsQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.eventsQueue,  // queue name
		c.eventsQueue,  // routing key
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishJournalPosted publishes a persistent journal-posted message.
func (c *Client) PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error {
	body, err := NewJournalPostedMessage(entry).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,     // exchange
		c.postedRoutingKey, // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    entry.DocumentNumber,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "Published journal posted message",
		"document_number", entry.DocumentNumber,
		"exchange", c.exchangeName,
		"routing_key", c.postedRoutingKey)
	return nil
}

// BusinessEventHandler processes one decoded business event.
type BusinessEventHandler func(ctx context.Context, msg *BusinessEventMessage) error

// ConsumeBusinessEvents blocks, feeding events queue deliveries to handler
// until ctx is done or the channel closes.
func (c *Client) ConsumeBusinessEvents(ctx context.Context, handler BusinessEventHandler) error {
	msgs, err := c.channel.Consume(
		c.eventsQueue, // queue
		"",            // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming business events", "queue", c.eventsQueue)
	return consume(ctx, msgs, handler)
}

func consume(ctx context.Context, msgs <-chan amqp091.Delivery, handler BusinessEventHandler) error {
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			handleDelivery(ctx, delivery, handler)
		}
	}
}

func handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler BusinessEventHandler) {
	msg, err := BusinessEventMessageFromJSON(delivery.Body)
	if err != nil {
		slog.ErrorContext(ctx, "Rejecting malformed business event", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, msg); err != nil {
		requeue := !rejectedByLedger(err)
		slog.ErrorContext(ctx, "Failed to handle business event",
			"error", err,
			"type", msg.Type,
			"id", msg.ID,
			"requeue", requeue)
		_ = delivery.Nack(false, requeue)
		return
	}

	_ = delivery.Ack(false)
	slog.InfoContext(ctx, "Processed business event", "type", msg.Type, "id", msg.ID)
}

// rejectedByLedger reports errors that will fail again on redelivery.
func rejectedByLedger(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidAmount) ||
		errors.Is(err, apperrors.ErrUnknownAccountType)
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
