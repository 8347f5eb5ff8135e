package repoargs

import (
	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletTransactionCreate struct {
	UserID      int64
	BookingID   *uuid.UUID
	Direction   domain.DirectionType
	Amount      decimal.Decimal
	Description string
}
