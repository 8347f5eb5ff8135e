package domain

type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleMentor  RoleType = "mentor"
)

type BookingStatusType string

const (
	BookingStatusPending   BookingStatusType = "pending"
	BookingStatusConfirmed BookingStatusType = "confirmed"
	BookingStatusCompleted BookingStatusType = "completed"
	BookingStatusCancelled BookingStatusType = "cancelled"
)

// ActiveBookingStatuses статусы, участвующие в проверке пересечения временных окон.
var ActiveBookingStatuses = []BookingStatusType{BookingStatusPending, BookingStatusConfirmed}

type PaymentStatusType string

const (
	PaymentStatusUnpaid   PaymentStatusType = "unpaid"
	PaymentStatusPaid     PaymentStatusType = "paid"
	PaymentStatusRefunded PaymentStatusType = "refunded"
)

type DirectionType string

const (
	DirectionDebit  DirectionType = "debit"
	DirectionCredit DirectionType = "credit"
)

// CanTransition проверяет допустимость перехода статуса брони по графу
// pending → confirmed → completed, cancelled достижим из pending и confirmed.
// Из completed и cancelled переходов нет.
func CanTransition(from, to BookingStatusType) bool {
	switch to {
	case BookingStatusConfirmed:
		return from == BookingStatusPending
	case BookingStatusCompleted:
		return from == BookingStatusConfirmed
	case BookingStatusCancelled:
		return from == BookingStatusPending || from == BookingStatusConfirmed
	default:
		return false
	}
}
