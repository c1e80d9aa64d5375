package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ghoomlo/cab-booking/internal/kafka"
)

// Sender is the delivery boundary for outbound notifications. The actual
// SMS/email gateway sits behind this; the default implementation records
// the handoff.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	logrus.WithFields(logrus.Fields{
		"kind":    event.Kind,
		"channel": event.Channel,
		"to":      event.To,
	}).Info("delivering notification")
	return nil
}
