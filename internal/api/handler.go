package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
	"github.com/shopspring/decimal"
)

// AccountsOperator defines the core operations the HTTP layer exposes.
type AccountsOperator interface {
	CreateAccount(ctx context.Context, accountID string, balance decimal.Decimal) error
	GetAccount(accountID string) (models.AccountView, error)
	Transfer(ctx context.Context, req models.TransferRequest) error
}

// AccountsHandler maps HTTP requests onto the accounts service and service
// error kinds onto status codes.
type AccountsHandler struct {
	service AccountsOperator
}

type CreateAccountRequest struct {
	AccountID string          `json:"account_id" validate:"required"`
	Balance   decimal.Decimal `json:"balance"`
}

type TransferRequest struct {
	FromAccount string          `json:"from_account" validate:"required"`
	ToAccount   string          `json:"to_account" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func NewAccountsHandler(service AccountsOperator) *AccountsHandler {
	return &AccountsHandler{service: service}
}

// Routes registers the account endpoints on the router.
func (h *AccountsHandler) Routes(r *gin.Engine) {
	v1 := r.Group("/v1/accounts")
	{
		v1.POST("", h.CreateAccount)
		v1.GET("/:account_id", h.GetAccount)
		v1.PUT("/transfer", h.Transfer)
	}
}

func (h *AccountsHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	if err := h.service.CreateAccount(c.Request.Context(), req.AccountID, req.Balance); err != nil {
		if errors.Is(err, models.ErrDuplicateAccount) || errors.Is(err, models.ErrInvalidAmount) {
			RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.Status(http.StatusCreated)
}

func (h *AccountsHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("account_id")

	view, err := h.service.GetAccount(accountID)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			RespondWithError(c, http.StatusNotFound, err.Error())
			return
		}
		RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AccountsHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	err := h.service.Transfer(c.Request.Context(), models.TransferRequest{
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Amount:      req.Amount,
	})
	if err != nil {
		if isTransferRejection(err) {
			RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		RespondWithError(c, http.StatusInternalServerError, "Failed to transfer amount")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Amount successfully transferred"})
}

// isTransferRejection reports whether the error is an expected validation
// outcome rather than an internal failure.
func isTransferRejection(err error) bool {
	return errors.Is(err, models.ErrAccountNotFound) ||
		errors.Is(err, models.ErrSameAccount) ||
		errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrInsufficientFunds)
}
