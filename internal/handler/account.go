package handler

import (
	"net/http"
	"strconv"

	"spinx-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// Register
// @Summary Register an account
// @Description Creates a new player account with a zero balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body model.RegisterRequest true "Registration details"
// @Success 201 {object} model.AccountResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Username taken"
// @Router /accounts [post]
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	acct, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.AccountResponse{
		ID:           acct.ID,
		Username:     acct.Username,
		Balance:      acct.Balance.StringFixed(2),
		ReferralCode: acct.ReferralCode,
	})
}

// Login
// @Summary Log in
// @Description Verifies credentials and returns the account
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.AccountResponse
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Failure 403 {object} model.ErrorResponse "Account suspended"
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	acct, err := h.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AccountResponse{
		ID:           acct.ID,
		Username:     acct.Username,
		Balance:      acct.Balance.StringFixed(2),
		ReferralCode: acct.ReferralCode,
	})
}

// GetBalance
// @Summary Get account balance
// @Description Returns the current balance for an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /accounts/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	accountID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	resp, err := h.accountService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get account transaction history
// @Description Returns a paginated list of ledger entries, newest first
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.LedgerListResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /accounts/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	accountID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.accountService.GetLedger(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LedgerListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	})
}

// SuspendAccount
// @Summary Suspend an account
// @Description Suspended accounts cannot wager, deposit or withdraw
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /admin/accounts/{id}/suspend [post]
func (h *Handler) SuspendAccount(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateAccount
// @Summary Reactivate an account
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /admin/accounts/{id}/activate [post]
func (h *Handler) ActivateAccount(c *gin.Context) {
	h.setActive(c, true)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	accountID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	if err := h.accountService.SetActive(c.Request.Context(), accountID, active); err != nil {
		h.handleError(c, err)
		return
	}

	status := "suspended"
	if active {
		status = "active"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ReviewKYC
// @Summary Review an account's KYC submission
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param verdict body model.KYCReviewRequest true "Verdict"
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /admin/accounts/{id}/kyc [post]
func (h *Handler) ReviewKYC(c *gin.Context) {
	accountID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	var req model.KYCReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	status, err := model.ParseKYCStatus(req.Verdict)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.accountService.ReviewKYC(c.Request.Context(), accountID, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"kyc_status": string(status)})
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// accountIDQuery extracts the acting account from the query string.
func accountIDQuery(c *gin.Context) (int64, bool) {
	idStr := c.Query("account_id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "account_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}

	accountID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "account_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return accountID, true
}
