package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

type WalletRepository struct {
	db uow.DBTX
}

func NewWalletRepository(db uow.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	const query = `
		INSERT INTO wallets (user_id)
		VALUES ($1)
		RETURNING user_id, balance, updated_at`

	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "creating wallet for user %d", userID)
	}
	return &wallet, nil
}

func (r *WalletRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	const query = `SELECT user_id, balance, updated_at FROM wallets WHERE user_id = $1`

	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "finding wallet for user %d", userID)
	}
	return &wallet, nil
}

// Debit уменьшает баланс кошелька при условии достаточности средств. Возвращает
// новый баланс. Если средств не хватает или кошелька нет, условие WHERE не
// выполняется и возвращается domain.ErrRecordNotFound - различает вызывающая сторона.
func (r *WalletRepository) Debit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance`

	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance); err != nil {
		return decimal.Zero, convertErr(err, "debiting wallet of user %d", userID)
	}
	return balance, nil
}

// Credit увеличивает баланс кошелька. Возвращает новый баланс.
func (r *WalletRepository) Credit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	const query = `
		UPDATE wallets
		SET balance = balance + $2, updated_at = now()
		WHERE user_id = $1
		RETURNING balance`

	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance); err != nil {
		return decimal.Zero, convertErr(err, "crediting wallet of user %d", userID)
	}
	return balance, nil
}

// CreateTransaction добавляет запись в журнал. Журнал append-only: сумма всегда
// положительная, знак кодируется направлением. Для direction=credit с заполненным
// booking_id действует частичный уникальный индекс; конфликт гасится через
// ON CONFLICT DO NOTHING (транзакция не абортится) и возвращается как
// domain.ErrDuplicateKey.
func (r *WalletRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.WalletTransactionCreate,
) (*domain.WalletTransaction, error) {
	const query = `
		INSERT INTO wallet_transactions (user_id, booking_id, direction, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
		RETURNING id, created_at, user_id, booking_id, direction, amount, description`

	var t domain.WalletTransaction
	err := r.db.QueryRow(ctx, query, args.UserID, args.BookingID, args.Direction, args.Amount, args.Description).
		Scan(&t.ID, &t.CreatedAt, &t.UserID, &t.BookingID, &t.Direction, &t.Amount, &t.Description)
	if err != nil {
		// Единственный случай нулевого результата у INSERT ... RETURNING - конфликт.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(
				"[repository/creating wallet transaction for user %d] %w",
				args.UserID, domain.ErrDuplicateKey,
			)
		}
		return nil, convertErr(err, "creating wallet transaction for user %d", args.UserID)
	}
	return &t, nil
}

func (r *WalletRepository) GetTransactions(ctx context.Context, userID int64) ([]domain.WalletTransaction, error) {
	const query = `
		SELECT id, created_at, user_id, booking_id, direction, amount, description
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, convertErr(err, "wallet transactions of user %d", userID)
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		if scanErr := rows.Scan(
			&t.ID, &t.CreatedAt, &t.UserID, &t.BookingID, &t.Direction, &t.Amount, &t.Description,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning wallet transaction")
		}
		transactions = append(transactions, t)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading wallet transactions")
	}
	return transactions, nil
}
