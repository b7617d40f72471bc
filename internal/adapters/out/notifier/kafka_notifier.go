package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"sitta/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.ChangeNotifier = (*KafkaNotifier)(nil)

// messageWriter is the part of *kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes one message per change, keyed by the record key so
// changes to the same record stay ordered within a partition.
type KafkaNotifier struct {
	writer   messageWriter
	producer string
}

// NewKafkaNotifier writes synchronously so a failed publish is reported to
// the caller.
func NewKafkaNotifier(brokers []string, topic, producer string) *KafkaNotifier {
	return newKafkaNotifier(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, producer)
}

func newKafkaNotifier(w messageWriter, producer string) *KafkaNotifier {
	return &KafkaNotifier{writer: w, producer: producer}
}

func (n *KafkaNotifier) Notify(ctx context.Context, changes []ports.Change) error {
	if len(changes) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(changes))
	for _, c := range changes {
		env, err := NewEnvelope(c, n.producer)
		if err != nil {
			return err
		}
		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("encode envelope %s: %w", env.EventID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(c.Key),
			Value: value,
			Time:  env.OccurredAt,
			Headers: []kafka.Header{
				{Key: "x-event-type", Value: []byte(env.EventType)},
				{Key: "x-event-version", Value: []byte(strconv.Itoa(env.EventVersion))},
			},
		})
	}

	if err := n.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d changes: %w", len(msgs), err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
