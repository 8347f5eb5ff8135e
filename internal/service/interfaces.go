package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type MentorRepository interface {
	CreateProfile(ctx context.Context, args repoargs.CreateMentorProfile) (*domain.MentorProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error)
	UpdateProfile(ctx context.Context, args repoargs.CreateMentorProfile) (*domain.MentorProfile, error)
	UpdateEmbedding(ctx context.Context, userID int64, embedding []float64) error
	SearchBySimilarity(ctx context.Context, args repoargs.SearchBySimilarity) ([]domain.MentorProfile, error)
	SearchByKeyword(ctx context.Context, args repoargs.SearchByKeyword) ([]domain.MentorProfile, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, args repoargs.CreateBooking) (*domain.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, args repoargs.FindOverlapping) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateBookingStatus) (*domain.Booking, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]domain.Booking, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]domain.Booking, error)
	GetUncredited(ctx context.Context, limit uint) ([]domain.Booking, error)
	MarkCredited(ctx context.Context, id uuid.UUID) error
}

type WalletRepository interface {
	CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	CreateTransaction(ctx context.Context, args repoargs.WalletTransactionCreate) (*domain.WalletTransaction, error)
	GetTransactions(ctx context.Context, userID int64) ([]domain.WalletTransaction, error)
}

// EmbeddingClient клиент внешнего провайдера эмбеддингов.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Notifier отправляет уведомления о событиях бронирования. Вызывается в режиме
// fire-and-forget: ошибка доставки логируется, но не влияет на результат операции.
type Notifier interface {
	BookingCreated(ctx context.Context, booking domain.Booking, mentorEmail string) error
}
