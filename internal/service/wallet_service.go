package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	userRepo   UserRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, repoargs.WalletRepoName)
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
		userRepo:   userRepo,
	}, nil
}

// GetBalance возвращает кошелек вызывающего. Кошелек есть только у менторов.
func (s *WalletService) GetBalance(ctx context.Context, callerID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting balance: %w", domain.ErrWalletNotFound)
		}
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	return wallet, nil
}

// GetTransactions возвращает журнал операций кошелька вызывающего,
// новые записи первыми.
func (s *WalletService) GetTransactions(ctx context.Context, callerID int64) ([]domain.WalletTransaction, error) {
	transactions, err := s.walletRepo.GetTransactions(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("getting wallet transactions: %w", err)
	}
	return transactions, nil
}

type WithdrawResult struct {
	NewBalance  decimal.Decimal
	Transaction *domain.WalletTransaction
}

// Withdraw списывает средства с кошелька ментора. Условное обновление баланса
// (balance >= amount) и запись в журнал выполняются в одной транзакции: списание
// без записи в журнале невозможно. При нехватке средств возвращает
// InsufficientBalanceError с текущим балансом.
func (s *WalletService) Withdraw(
	ctx context.Context,
	callerID int64,
	amount decimal.Decimal,
	accountDetails string,
) (*WithdrawResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdraw: amount must be positive, got %s", amount.String())
	}

	caller, callerErr := s.userRepo.FindByID(ctx, callerID)
	if callerErr != nil {
		return nil, fmt.Errorf("withdraw: %w", callerErr)
	}
	if caller.Role != domain.RoleMentor {
		return nil, fmt.Errorf("withdraw: %w", domain.ErrWrongRole)
	}

	var result WithdrawResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		walletRepo, repoErr := uow.GetAs[WalletRepository](tx, repoargs.WalletRepoName)
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		newBalance, debitErr := walletRepo.Debit(c, callerID, amount)
		if debitErr != nil {
			if !errors.Is(debitErr, domain.ErrRecordNotFound) {
				return debitErr //nolint:wrapcheck
			}
			// Условие WHERE не выполнено: либо кошелька нет, либо не хватает средств.
			wallet, findErr := walletRepo.FindByUserID(c, callerID)
			if findErr != nil {
				if errors.Is(findErr, domain.ErrRecordNotFound) {
					return domain.ErrWalletNotFound
				}
				return findErr //nolint:wrapcheck
			}
			return domain.NewInsufficientBalanceError(wallet.Balance, amount)
		}

		transaction, transErr := walletRepo.CreateTransaction(c, repoargs.WalletTransactionCreate{
			UserID:      callerID,
			Direction:   domain.DirectionDebit,
			Amount:      amount,
			Description: fmt.Sprintf("withdrawal to account %s", accountDetails),
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		result = WithdrawResult{NewBalance: newBalance, Transaction: transaction}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("withdraw: %w", txErr)
	}
	return &result, nil
}

// CreditForBooking начисляет стоимость завершенной оплаченной сессии на кошелек
// ментора. Идемпотентна: повторный вызов по той же брони не создаст второго
// начисления (частичный уникальный индекс по booking_id) и вернет ErrAlreadyCredited.
func (s *WalletService) CreditForBooking(ctx context.Context, bookingID uuid.UUID) (err error) {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bookingRepo, bookingRepoErr := uow.GetAs[BookingRepository](tx, repoargs.BookingRepoName)
		if bookingRepoErr != nil {
			return bookingRepoErr //nolint:wrapcheck
		}
		walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, repoargs.WalletRepoName)
		if walletRepoErr != nil {
			return walletRepoErr //nolint:wrapcheck
		}

		booking, findErr := bookingRepo.FindByID(c, bookingID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if booking.CreditedAt != nil {
			err = domain.ErrAlreadyCredited
			return nil
		}
		if booking.Status != domain.BookingStatusCompleted || booking.PaymentStatus != domain.PaymentStatusPaid {
			return fmt.Errorf(
				"booking %s is not payable: status %s, payment status %s",
				booking.ID, booking.Status, booking.PaymentStatus,
			)
		}

		_, transErr := walletRepo.CreateTransaction(c, repoargs.WalletTransactionCreate{
			UserID:      booking.MentorID,
			BookingID:   &booking.ID,
			Direction:   domain.DirectionCredit,
			Amount:      booking.Amount,
			Description: fmt.Sprintf("credit for session %s", booking.ID),
		})
		if transErr != nil {
			// Дубликат означает, что начисление уже было (ретрай после сбоя между
			// вставкой журнала и отметкой брони) - фиксируем отметку и выходим.
			if errors.Is(transErr, domain.ErrDuplicateKey) {
				err = domain.ErrAlreadyCredited
				return bookingRepo.MarkCredited(c, bookingID) //nolint:wrapcheck
			}
			return transErr //nolint:wrapcheck
		}

		if _, creditErr := walletRepo.Credit(c, booking.MentorID, booking.Amount); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		return bookingRepo.MarkCredited(c, bookingID) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("crediting booking %s: %w", bookingID, txErr)
	}
	return err
}
