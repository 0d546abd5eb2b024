package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// LogEvents drains a subscription and logs each event until ctx is done or the channel closes.
func LogEvents(ctx context.Context, messages <-chan *message.Message, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				logger.Warn("Dropping undecodable event", "message_uuid", msg.UUID, "error", err)
				msg.Nack()
				continue
			}
			logger.Info("Event received",
				"event_id", event.ID,
				"event_type", event.Type,
				"timestamp", event.Timestamp)
			msg.Ack()
		}
	}
}
