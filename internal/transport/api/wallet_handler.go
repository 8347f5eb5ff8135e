package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"

	"net/http"
)

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance   float64   `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Balance GET RouteGroup + BalanceRoute. Текущий баланс кошелька ментора.
func (w *WalletHandler) Balance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := w.svs.GetBalance(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:   wallet.Balance.InexactFloat64(),
		UpdatedAt: wallet.UpdatedAt,
	})
}

type WithdrawParams struct {
	Amount         decimal.Decimal `json:"amount"`
	AccountDetails string          `binding:"required,max_bytes=255" json:"account_details"`
}

type WithdrawResponse struct {
	NewBalance       float64 `json:"new_balance"`
	WithdrawalAmount float64 `json:"withdrawal_amount"`
}

// Withdraw POST RouteGroup + WithdrawRoute. Списывает средства с кошелька.
// При нехватке средств возвращает 402 с текущим балансом в теле.
func (w *WalletHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := w.svs.Withdraw(reqCtx, currentUserID, params.Amount, params.AccountDetails)
	if err != nil {
		var balanceErr *domain.InsufficientBalanceError
		switch {
		case errors.As(err, &balanceErr):
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":   "not enough balance",
				"balance": balanceErr.Balance.InexactFloat64(),
			})
		case errors.Is(err, domain.ErrWalletNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrWrongRole):
			c.AbortWithStatus(http.StatusForbidden)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &WithdrawResponse{
		NewBalance:       result.NewBalance.InexactFloat64(),
		WithdrawalAmount: result.Transaction.Amount.InexactFloat64(),
	})
}

type TransactionResponseItem struct {
	ID          int64      `json:"id"`
	Direction   string     `json:"direction"`
	Amount      float64    `json:"amount"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
}

// Transactions GET RouteGroup + TransactionsRoute. Журнал операций кошелька,
// новые записи первыми.
func (w *WalletHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := w.svs.GetTransactions(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(transactions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			ID:          transaction.ID,
			Direction:   string(transaction.Direction),
			Amount:      transaction.Amount.InexactFloat64(),
			BookingID:   transaction.BookingID,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": response})
}
