package messaging

import (
	"context"

	"session-ledger/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer reads from a durable queue bound to a topic exchange. Rejected
// messages are routed to <queue>.dead through the <exchange>.dlx exchange.
type Consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
	keys     []string
}

func NewConsumer(url, exchange, queue string, keys []string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}

	fail := func(err error, msg string) (*Consumer, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, msg)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fail(err, "declare exchange")
	}

	dlx := exchange + ".dlx"
	if err := ch.ExchangeDeclare(dlx, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fail(err, "declare dead-letter exchange")
	}
	dead, err := ch.QueueDeclare(queue+".dead", true, false, false, false, nil)
	if err != nil {
		return fail(err, "declare dead-letter queue")
	}
	if err := ch.QueueBind(dead.Name, "", dlx, false, nil); err != nil {
		return fail(err, "bind dead-letter queue")
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": dlx,
	})
	if err != nil {
		return fail(err, "declare queue")
	}
	for _, rk := range keys {
		if err := ch.QueueBind(q.Name, rk, exchange, false, nil); err != nil {
			return fail(err, "bind "+rk)
		}
	}
	if err := ch.Qos(16, 0, false); err != nil {
		return fail(err, "set prefetch")
	}
	return &Consumer{conn: conn, ch: ch, exchange: exchange, queue: q.Name, keys: keys}, nil
}

func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	return c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
