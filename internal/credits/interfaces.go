package credits

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/mentorlink/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type BookingServicer interface {
	UncreditedBookings(ctx context.Context, limit uint) ([]domain.Booking, error)
}

type WalletServicer interface {
	CreditForBooking(ctx context.Context, bookingID uuid.UUID) error
}
