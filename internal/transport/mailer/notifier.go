package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/mentorlink/internal/domain"
)

// Notifier собирает письма о событиях бронирования поверх HTTP клиента провайдера.
type Notifier struct {
	client HTTPClient
}

func NewNotifier(client HTTPClient) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) BookingCreated(ctx context.Context, booking domain.Booking, mentorEmail string) error {
	msg := Message{
		To:      mentorEmail,
		Subject: "New session request",
		HTML: fmt.Sprintf(
			"<p>You have a new session request for %s (%d min, %s).</p>",
			booking.StartsAt.Format(time.RFC1123),
			booking.DurationMinutes,
			booking.SessionType,
		),
	}
	if err := n.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending booking notification: %w", err)
	}
	return nil
}
