package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/scanworks/scanvault/internal/common"
)

// AMQPQueue is a durable work queue on one AMQP channel.
type AMQPQueue struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	name   string
	logger *slog.Logger
}

func NewAMQPQueue(url, name string, logger *slog.Logger) (*AMQPQueue, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", name, err)
	}

	return &AMQPQueue{conn: conn, ch: ch, name: name, logger: logger}, nil
}

var _ Dispatcher = (*AMQPQueue)(nil)

func (q *AMQPQueue) Dispatch(_ context.Context, documentID int) error {
	body, err := encodeTask(documentID)
	if err != nil {
		return err
	}
	err = q.ch.Publish("", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		q.logger.Error("failed to publish task", "document_id", documentID, "error", err)
		return fmt.Errorf("publish task: %w", err)
	}
	q.logger.Debug("task published", "document_id", documentID, "queue", q.name)
	return nil
}

func (q *AMQPQueue) DispatchBatch(ctx context.Context, documentIDs []int) error {
	for _, id := range documentIDs {
		if err := q.Dispatch(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Consume runs a worker pool over the queue until ctx is cancelled. Prefetch
// equals the worker count so each worker holds at most one unacked task.
func (q *AMQPQueue) Consume(ctx context.Context, workers int, handler Handler) error {
	if workers <= 0 {
		workers = 1
	}
	if err := q.ch.Qos(workers, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	msgs, err := q.ch.Consume(
		q.name,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.name, err)
	}
	q.logger.Info("worker pool started", "queue", q.name, "workers", workers)

	// Closing the channel ends the delivery stream and drains the pool.
	go func() {
		<-ctx.Done()
		_ = q.ch.Close()
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range msgs {
				q.handleDelivery(ctx, d, handler)
			}
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("delivery stream closed")
}

// handleDelivery acks only after the handler reports a terminal outcome. A
// handler error means the run never started; the task gets one requeue, then
// is dropped so a poison message cannot spin the pool.
func (q *AMQPQueue) handleDelivery(ctx context.Context, d amqp.Delivery, handler Handler) {
	documentID, err := decodeTask(d.Body)
	if err != nil {
		q.logger.Error("discarding malformed task", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
		return
	}

	if err := handler(common.WithDocumentID(ctx, documentID), documentID); err != nil {
		if d.Redelivered {
			q.logger.Error("dropping task after redelivery", "document_id", documentID, "message_id", d.MessageId, "error", err)
			_ = d.Nack(false, false)
			return
		}
		q.logger.Warn("requeueing task", "document_id", documentID, "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

// Ping reports broker connectivity for health checks.
func (q *AMQPQueue) Ping() error {
	if q.conn.IsClosed() {
		return fmt.Errorf("broker connection closed")
	}
	return nil
}

func (q *AMQPQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		_ = q.conn.Close()
		return err
	}
	return q.conn.Close()
}
