package repoargs

import (
	"time"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBooking struct {
	MentorID        int64
	StudentID       int64
	StartsAt        time.Time
	DurationMinutes int32
	SessionType     string
	Message         string
	Amount          decimal.Decimal
}

// UpdateBookingStatus условное обновление: статус меняется только если текущий
// статус в базе равен FromStatus. PaymentStatus обновляется, если задан.
type UpdateBookingStatus struct {
	ID            uuid.UUID
	FromStatus    domain.BookingStatusType
	ToStatus      domain.BookingStatusType
	PaymentStatus *domain.PaymentStatusType
}

// FindOverlapping параметры поиска активных броней ментора, пересекающих
// полуоткрытое окно [From, To).
type FindOverlapping struct {
	MentorID int64
	From     time.Time
	To       time.Time
}
