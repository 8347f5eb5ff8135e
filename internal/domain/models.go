package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Login     string
	Email     string
	Password  string
	Role      RoleType
}

type MentorProfile struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	DisplayName string
	Bio         string
	Skills      string
	HourlyRate  decimal.Decimal
}

type Booking struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MentorID        int64
	StudentID       int64
	StartsAt        time.Time
	DurationMinutes int32
	SessionType     string
	Message         string
	Status          BookingStatusType
	PaymentStatus   PaymentStatusType
	Amount          decimal.Decimal
	CreditedAt      *time.Time
}

// EndsAt возвращает конец сессии. Интервал сессии полуоткрытый: [StartsAt, EndsAt).
func (b Booking) EndsAt() time.Time {
	return b.StartsAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps сообщает, пересекается ли сессия с полуоткрытым окном [from, to).
// Смежные интервалы пересечением не считаются.
func (b Booking) Overlaps(from, to time.Time) bool {
	return b.StartsAt.Before(to) && from.Before(b.EndsAt())
}

type Wallet struct {
	UserID    int64
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

type WalletTransaction struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	BookingID   *uuid.UUID
	Direction   DirectionType
	Amount      decimal.Decimal
	Description string
}
