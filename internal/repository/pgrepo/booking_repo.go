package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

const bookingColumns = `id, created_at, updated_at, mentor_id, student_id, starts_at,
		duration_minutes, session_type, message, status, payment_status, amount, credited_at`

type BookingRepository struct {
	db uow.DBTX
}

func NewBookingRepository(db uow.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(
	ctx context.Context,
	args repoargs.CreateBooking,
) (*domain.Booking, error) {
	const query = `
		INSERT INTO bookings (mentor_id, student_id, starts_at, duration_minutes, session_type, message, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns

	row := r.db.QueryRow(ctx, query,
		args.MentorID, args.StudentID, args.StartsAt, args.DurationMinutes,
		args.SessionType, args.Message, args.Amount,
	)
	booking, err := scanBooking(row)
	if err != nil {
		return nil, convertErr(err, "creating booking for mentor %d", args.MentorID)
	}
	return booking, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding booking %s", id)
	}
	return booking, nil
}

// FindOverlapping возвращает активные (pending/confirmed) брони ментора, пересекающие
// полуоткрытое окно [From, To). Бронь, заканчивающаяся ровно в From, пересечением не считается.
func (r *BookingRepository) FindOverlapping(
	ctx context.Context,
	args repoargs.FindOverlapping,
) ([]domain.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE mentor_id = $1
		  AND status = ANY($2)
		  AND starts_at < $4
		  AND starts_at + make_interval(mins => duration_minutes) > $3`

	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.db.Query(ctx, query, args.MentorID, statuses, args.From, args.To)
	if err != nil {
		return nil, convertErr(err, "finding overlapping bookings for mentor %d", args.MentorID)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus выполняет условное обновление: строка меняется только если текущий
// статус равен FromStatus. Возвращает domain.ErrRecordNotFound, если условие не
// выполнено (сама бронь при этом может существовать - различает вызывающая сторона).
func (r *BookingRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateBookingStatus,
) (*domain.Booking, error) {
	const query = `
		UPDATE bookings
		SET status = $3,
		    payment_status = COALESCE($4, payment_status),
		    updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING ` + bookingColumns

	var paymentStatus *string
	if args.PaymentStatus != nil {
		s := string(*args.PaymentStatus)
		paymentStatus = &s
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args.ID, args.FromStatus, args.ToStatus, paymentStatus))
	if err != nil {
		return nil, convertErr(err, "updating booking %s status %s -> %s", args.ID, args.FromStatus, args.ToStatus)
	}
	return booking, nil
}

func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]domain.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE student_id = $1
		ORDER BY starts_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, convertErr(err, "bookings by student %d", studentID)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]domain.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE mentor_id = $1
		ORDER BY starts_at DESC`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, convertErr(err, "bookings by mentor %d", mentorID)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetUncredited возвращает завершенные оплаченные брони, по которым еще не было
// начисления на кошелек ментора.
func (r *BookingRepository) GetUncredited(ctx context.Context, limit uint) ([]domain.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND payment_status = $2 AND credited_at IS NULL
		ORDER BY updated_at
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, domain.BookingStatusCompleted, domain.PaymentStatusPaid, limit)
	if err != nil {
		return nil, convertErr(err, "uncredited bookings")
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MarkCredited помечает бронь как обработанную процессором начислений.
func (r *BookingRepository) MarkCredited(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE bookings
		SET credited_at = now(), updated_at = now()
		WHERE id = $1 AND credited_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "marking booking %s credited", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "marking booking %s credited", id)
	}
	return nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.MentorID, &b.StudentID, &b.StartsAt,
		&b.DurationMinutes, &b.SessionType, &b.Message, &b.Status, &b.PaymentStatus,
		&b.Amount, &b.CreditedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, convertErr(err, "scanning booking")
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "reading bookings")
	}
	return bookings, nil
}
