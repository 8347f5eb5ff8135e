package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrOwnerConflict     = errors.New("owner conflict")
	ErrWrongRole         = errors.New("wrong role")

	ErrBookingConflict  = errors.New("booking time conflict")
	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrAlreadyCredited  = errors.New("booking already credited")
	ErrEmptySearchQuery = errors.New("empty search query")
)

// InvalidTransitionError возвращается при попытке недопустимого перехода статуса брони.
type InvalidTransitionError struct {
	From BookingStatusType
	To   BookingStatusType
}

func NewInvalidTransitionError(from, to BookingStatusType) error {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition %s -> %s", e.From, e.To)
}

// InsufficientBalanceError содержит текущий баланс, чтобы вызывающая сторона могла
// сообщить его пользователю.
type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func NewInsufficientBalanceError(balance, requested decimal.Decimal) error {
	return &InsufficientBalanceError{Balance: balance, Requested: requested}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"not enough balance: requested %s, available %s",
		e.Requested.String(),
		e.Balance.String(),
	)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrNotEnoughBalance
}
