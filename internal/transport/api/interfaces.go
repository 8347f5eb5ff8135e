package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type MentorServicer interface {
	GetProfile(ctx context.Context, userID int64) (*domain.MentorProfile, error)
	UpdateProfile(ctx context.Context, callerID int64, args service.UpdateProfileArgs) (*domain.MentorProfile, error)
}

type BookingServicer interface {
	Book(ctx context.Context, studentID int64, args service.BookArgs) (*domain.Booking, error)
	Confirm(ctx context.Context, callerID int64, bookingID uuid.UUID) (*domain.Booking, error)
	Complete(
		ctx context.Context,
		callerID int64,
		bookingID uuid.UUID,
		paymentStatus domain.PaymentStatusType,
	) (*domain.Booking, error)
	Cancel(ctx context.Context, callerID int64, bookingID uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, callerID int64) ([]domain.Booking, error)
}

type WalletServicer interface {
	GetBalance(ctx context.Context, callerID int64) (*domain.Wallet, error)
	Withdraw(
		ctx context.Context,
		callerID int64,
		amount decimal.Decimal,
		accountDetails string,
	) (*service.WithdrawResult, error)
	GetTransactions(ctx context.Context, callerID int64) ([]domain.WalletTransaction, error)
}

type SearchServicer interface {
	Search(ctx context.Context, query string, limit uint) (*service.SearchResult, error)
}
