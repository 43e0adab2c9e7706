package handler

import (
	"net/http"
	"strconv"

	"spinx-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// Deposit
// @Summary Process a deposit
// @Description Credits a provider-confirmed deposit; the reference is the idempotency key
// @Tags wallet
// @Accept json
// @Produce json
// @Param account_id query int true "Account ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 200 {object} model.DepositResponse "Already processed"
// @Success 201 {object} model.DepositResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Reference used by another account"
// @Router /deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Deposit(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Status == "already_processed" {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// RequestWithdrawal
// @Summary Request a withdrawal
// @Description Debits the amount as an optimistic hold and enqueues a pending request
// @Tags wallet
// @Accept json
// @Produce json
// @Param account_id query int true "Account ID"
// @Param withdrawal body model.WithdrawalRequestBody true "Withdrawal details"
// @Success 201 {object} model.WithdrawalRequest
// @Failure 400 {object} model.ErrorResponse "Bad request or insufficient funds"
// @Failure 403 {object} model.ErrorResponse "Account suspended"
// @Router /withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	accountID, ok := accountIDQuery(c)
	if !ok {
		return
	}

	var req model.WithdrawalRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.withdrawalService.Request(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListWithdrawals
// @Summary List withdrawal requests
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.WithdrawalListResponse
// @Router /admin/withdrawals [get]
func (h *Handler) ListWithdrawals(c *gin.Context) {
	var status *model.WithdrawalStatus
	if s := c.Query("status"); s != "" {
		st := model.WithdrawalStatus(s)
		status = &st
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requests, err := h.withdrawalService.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WithdrawalListResponse{
		Withdrawals: requests,
		Total:       len(requests),
	})
}

// ApproveWithdrawal
// @Summary Approve a pending withdrawal
// @Description No balance effect; the funds were held at request time
// @Tags admin
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} model.WithdrawalRequest
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Failure 409 {object} model.ErrorResponse "Request not pending"
// @Router /admin/withdrawals/{id}/approve [post]
func (h *Handler) ApproveWithdrawal(c *gin.Context) {
	requestID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrWithdrawalNotFound)
		return
	}

	resp, err := h.withdrawalService.Approve(c.Request.Context(), requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectWithdrawal
// @Summary Reject a pending withdrawal
// @Description Credits the held amount back exactly once
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param rejection body model.RejectWithdrawalRequest true "Rejection reason"
// @Success 200 {object} model.WithdrawalRequest
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Failure 409 {object} model.ErrorResponse "Request not pending"
// @Router /admin/withdrawals/{id}/reject [post]
func (h *Handler) RejectWithdrawal(c *gin.Context) {
	requestID, err := pathID(c)
	if err != nil {
		h.handleError(c, model.ErrWithdrawalNotFound)
		return
	}

	var req model.RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.withdrawalService.Reject(c.Request.Context(), requestID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
