package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

const notifyTimeout = 5 * time.Second

const minutesPerHour = 60

type BookingService struct {
	uow         uow.UOW
	bookingRepo BookingRepository
	userRepo    UserRepository
	mentorRepo  MentorRepository
	notifier    Notifier
	l           *logrus.Entry
}

func NewBookingService(u uow.UOW, notifier Notifier, l *logrus.Logger) (*BookingService, error) {
	bookingRepo, bookingRepoErr := uow.GetRepositoryAs[BookingRepository](u, repoargs.BookingRepoName)
	if bookingRepoErr != nil {
		return nil, bookingRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	mentorRepo, mentorRepoErr := uow.GetRepositoryAs[MentorRepository](u, repoargs.MentorRepoName)
	if mentorRepoErr != nil {
		return nil, mentorRepoErr
	}
	return &BookingService{
		uow:         u,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		mentorRepo:  mentorRepo,
		notifier:    notifier,
		l:           l.WithField("component", "booking_service"),
	}, nil
}

type BookArgs struct {
	MentorID        int64
	StartsAt        time.Time
	DurationMinutes int32
	SessionType     string
	Message         string
}

// Book создает бронь в статусе pending/unpaid. Вызывающий должен быть студентом,
// ментор - существовать, а запрошенное окно - не пересекаться с активными бронями
// ментора. Проверка пересечения и вставка выполняются в одной транзакции.
// После успешного создания отправляет уведомление ментору (fire-and-forget).
func (s *BookingService) Book(ctx context.Context, studentID int64, args BookArgs) (*domain.Booking, error) {
	if args.DurationMinutes <= 0 {
		return nil, fmt.Errorf("booking: duration must be positive, got %d", args.DurationMinutes)
	}
	if !args.StartsAt.After(time.Now()) {
		return nil, fmt.Errorf("booking: session time %s is in the past", args.StartsAt)
	}

	student, studentErr := s.userRepo.FindByID(ctx, studentID)
	if studentErr != nil {
		return nil, fmt.Errorf("booking: %w", studentErr)
	}
	if student.Role != domain.RoleStudent {
		return nil, fmt.Errorf("booking: %w", domain.ErrWrongRole)
	}

	// Профиль ментора нужен и для проверки существования, и для расчета стоимости.
	profile, profileErr := s.mentorRepo.FindByUserID(ctx, args.MentorID)
	if profileErr != nil {
		return nil, fmt.Errorf("booking: %w", profileErr)
	}

	amount := profile.HourlyRate.
		Mul(decimal.NewFromInt32(args.DurationMinutes)).
		Div(decimal.NewFromInt(minutesPerHour)).
		Round(2) //nolint:mnd

	endsAt := args.StartsAt.Add(time.Duration(args.DurationMinutes) * time.Minute)

	var booking *domain.Booking
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bookingRepo, repoErr := uow.GetAs[BookingRepository](tx, repoargs.BookingRepoName)
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		overlapping, overlapErr := bookingRepo.FindOverlapping(c, repoargs.FindOverlapping{
			MentorID: args.MentorID,
			From:     args.StartsAt,
			To:       endsAt,
		})
		if overlapErr != nil {
			return overlapErr //nolint:wrapcheck
		}
		for _, other := range overlapping {
			if other.Overlaps(args.StartsAt, endsAt) {
				return domain.ErrBookingConflict
			}
		}

		var createErr error
		booking, createErr = bookingRepo.CreateBooking(c, repoargs.CreateBooking{
			MentorID:        args.MentorID,
			StudentID:       studentID,
			StartsAt:        args.StartsAt,
			DurationMinutes: args.DurationMinutes,
			SessionType:     args.SessionType,
			Message:         args.Message,
			Amount:          amount,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("booking: %w", txErr)
	}

	s.notifyBookingCreated(*booking)

	return booking, nil
}

// Confirm переводит бронь pending → confirmed. Доступно только менторy брони.
// Обновление условное: конкурирующий Confirm получит InvalidTransitionError.
func (s *BookingService) Confirm(ctx context.Context, callerID int64, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, callerID, bookingID, transitionArgs{
		from:       domain.BookingStatusPending,
		to:         domain.BookingStatusConfirmed,
		mentorOnly: true,
	})
}

// Complete переводит бронь confirmed → completed и фиксирует статус оплаты.
// Начисление на кошелек ментора выполняет фоновый процессор (at-least-once).
func (s *BookingService) Complete(
	ctx context.Context,
	callerID int64,
	bookingID uuid.UUID,
	paymentStatus domain.PaymentStatusType,
) (*domain.Booking, error) {
	if paymentStatus != domain.PaymentStatusPaid && paymentStatus != domain.PaymentStatusRefunded {
		return nil, fmt.Errorf("completing booking: unexpected payment status %s", paymentStatus)
	}
	return s.transition(ctx, callerID, bookingID, transitionArgs{
		from:          domain.BookingStatusConfirmed,
		to:            domain.BookingStatusCompleted,
		mentorOnly:    true,
		paymentStatus: &paymentStatus,
	})
}

// Cancel переводит бронь pending|confirmed → cancelled. Доступно и студенту, и менторy брони.
// Проигрыш гонки конкурирующему Confirm не фатален: пока переход из свежего статуса
// допустим, условный UPDATE повторяется. Статусы движутся только вперед, цикл конечен.
func (s *BookingService) Cancel(ctx context.Context, callerID int64, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, findErr := s.bookingRepo.FindByID(ctx, bookingID)
	if findErr != nil {
		return nil, fmt.Errorf("cancelling booking: %w", findErr)
	}
	if callerID != booking.MentorID && callerID != booking.StudentID {
		return nil, fmt.Errorf("cancelling booking: %w", domain.ErrOwnerConflict)
	}

	for {
		if !domain.CanTransition(booking.Status, domain.BookingStatusCancelled) {
			return nil, fmt.Errorf(
				"cancelling booking: %w",
				domain.NewInvalidTransitionError(booking.Status, domain.BookingStatusCancelled),
			)
		}

		updated, updErr := s.bookingRepo.UpdateStatus(ctx, repoargs.UpdateBookingStatus{
			ID:         bookingID,
			FromStatus: booking.Status,
			ToStatus:   domain.BookingStatusCancelled,
		})
		if updErr == nil {
			return updated, nil
		}
		if !errors.Is(updErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("cancelling booking: %w", updErr)
		}

		// Условный UPDATE не нашел строку: статус уже сменился. Перечитываем.
		booking, findErr = s.bookingRepo.FindByID(ctx, bookingID)
		if findErr != nil {
			return nil, fmt.Errorf("cancelling booking: %w", findErr)
		}
	}
}

// List возвращает брони, где вызывающий выступает студентом или ментором - роль
// определяется один раз из его профиля. Сортировка по времени сессии по убыванию.
func (s *BookingService) List(ctx context.Context, callerID int64) ([]domain.Booking, error) {
	user, userErr := s.userRepo.FindByID(ctx, callerID)
	if userErr != nil {
		return nil, fmt.Errorf("listing bookings: %w", userErr)
	}

	var bookings []domain.Booking
	var listErr error
	if user.Role == domain.RoleMentor {
		bookings, listErr = s.bookingRepo.GetByMentorID(ctx, callerID)
	} else {
		bookings, listErr = s.bookingRepo.GetByStudentID(ctx, callerID)
	}
	if listErr != nil {
		return nil, fmt.Errorf("listing bookings: %w", listErr)
	}
	return bookings, nil
}

// UncreditedBookings возвращает завершенные оплаченные брони без начисления -
// вход фонового процессора начислений.
func (s *BookingService) UncreditedBookings(ctx context.Context, limit uint) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.GetUncredited(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing uncredited bookings: %w", err)
	}
	return bookings, nil
}

type transitionArgs struct {
	from          domain.BookingStatusType
	to            domain.BookingStatusType
	mentorOnly    bool
	paymentStatus *domain.PaymentStatusType
}

func (s *BookingService) transition(
	ctx context.Context,
	callerID int64,
	bookingID uuid.UUID,
	args transitionArgs,
) (*domain.Booking, error) {
	booking, findErr := s.bookingRepo.FindByID(ctx, bookingID)
	if findErr != nil {
		return nil, fmt.Errorf("booking transition: %w", findErr)
	}
	if args.mentorOnly && callerID != booking.MentorID {
		return nil, fmt.Errorf("booking transition: %w", domain.ErrOwnerConflict)
	}

	updated, updErr := s.bookingRepo.UpdateStatus(ctx, repoargs.UpdateBookingStatus{
		ID:            bookingID,
		FromStatus:    args.from,
		ToStatus:      args.to,
		PaymentStatus: args.paymentStatus,
	})
	if updErr != nil {
		return nil, s.resolveTransitionErr(ctx, updErr, bookingID, args.to, "booking transition")
	}
	return updated, nil
}

// resolveTransitionErr различает "бронь не найдена" и "бронь есть, но статус уже
// другой": условный UPDATE в обоих случаях не возвращает строк.
func (s *BookingService) resolveTransitionErr(
	ctx context.Context,
	updErr error,
	bookingID uuid.UUID,
	to domain.BookingStatusType,
	msg string,
) error {
	if !errors.Is(updErr, domain.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, updErr)
	}
	current, findErr := s.bookingRepo.FindByID(ctx, bookingID)
	if findErr != nil {
		return fmt.Errorf("%s: %w", msg, findErr)
	}
	return fmt.Errorf("%s: %w", msg, domain.NewInvalidTransitionError(current.Status, to))
}

func (s *BookingService) notifyBookingCreated(booking domain.Booking) {
	if s.notifier == nil {
		return
	}

	mentor, mentorErr := s.userRepo.FindByID(context.Background(), booking.MentorID)
	if mentorErr != nil || mentor.Email == "" {
		return
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.BookingCreated(notifyCtx, booking, mentor.Email); err != nil {
			s.l.WithError(err).WithField("bookingID", booking.ID).Warn("booking notification failed")
		}
	}()
}
