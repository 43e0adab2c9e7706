package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spinx-engine/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_Deposit_Created(t *testing.T) {
	h, _, mockWallet, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/deposits", h.Deposit)

	mockWallet.On("Deposit", mock.Anything, int64(1), mock.MatchedBy(func(req *model.DepositRequest) bool {
		return req.Reference == "550e8400-e29b-41d4-a716-446655440000"
	})).Return(&model.DepositResponse{
		Status:    "success",
		Balance:   "6000.00",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
		Message:   "Deposit processed",
	}, nil)

	body, _ := json.Marshal(model.DepositRequest{
		Amount:    "5000",
		Method:    "mobile-money",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
	})
	req, _ := http.NewRequest(http.MethodPost, "/deposits?account_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Deposit_AlreadyProcessed_Returns200(t *testing.T) {
	h, _, mockWallet, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/deposits", h.Deposit)

	mockWallet.On("Deposit", mock.Anything, int64(1), mock.Anything).Return(&model.DepositResponse{
		Status:    "already_processed",
		Balance:   "6000.00",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
		Message:   "Deposit already processed",
	}, nil)

	body, _ := json.Marshal(model.DepositRequest{
		Amount:    "5000",
		Method:    "mobile-money",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
	})
	req, _ := http.NewRequest(http.MethodPost, "/deposits?account_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Deposit_DuplicateReference_Conflict(t *testing.T) {
	h, _, mockWallet, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/deposits", h.Deposit)

	mockWallet.On("Deposit", mock.Anything, int64(1), mock.Anything).Return(nil, model.ErrDuplicateReference)

	body, _ := json.Marshal(model.DepositRequest{
		Amount:    "5000",
		Method:    "mobile-money",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
	})
	req, _ := http.NewRequest(http.MethodPost, "/deposits?account_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Deposit_InvalidMethod_RejectedByBinding(t *testing.T) {
	h, _, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/deposits", h.Deposit)

	body, _ := json.Marshal(model.DepositRequest{
		Amount:    "5000",
		Method:    "cheque",
		Reference: "550e8400-e29b-41d4-a716-446655440000",
	})
	req, _ := http.NewRequest(http.MethodPost, "/deposits?account_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestWithdrawal_Created(t *testing.T) {
	h, _, _, _, _, mockWithdrawals := newTestHandler(t)

	router := gin.New()
	router.POST("/withdrawals", h.RequestWithdrawal)

	mockWithdrawals.On("Request", mock.Anything, int64(1), mock.MatchedBy(func(req *model.WithdrawalRequestBody) bool {
		return req.Amount == "2000" && req.Method == "bank"
	})).Return(&model.WithdrawalRequest{
		ID:        11,
		AccountID: 1,
		Amount:    decimal.NewFromInt(2000),
		Fee:       decimal.NewFromInt(20),
		NetAmount: decimal.NewFromInt(1980),
		Method:    model.MethodBank,
		Status:    model.WithdrawalPending,
	}, nil)

	body, _ := json.Marshal(model.WithdrawalRequestBody{
		Amount:         "2000",
		Method:         "bank",
		AccountDetails: "0123456789 / GTBank",
	})
	req, _ := http.NewRequest(http.MethodPost, "/withdrawals?account_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp model.WithdrawalRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, model.WithdrawalPending, resp.Status)
}

func TestHandler_ApproveWithdrawal_NotPending(t *testing.T) {
	h, _, _, _, _, mockWithdrawals := newTestHandler(t)

	router := gin.New()
	router.POST("/admin/withdrawals/:id/approve", h.ApproveWithdrawal)

	mockWithdrawals.On("Approve", mock.Anything, int64(11)).Return(nil, model.ErrWithdrawalNotPending)

	req, _ := http.NewRequest(http.MethodPost, "/admin/withdrawals/11/approve", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectWithdrawal_Success(t *testing.T) {
	h, _, _, _, _, mockWithdrawals := newTestHandler(t)

	router := gin.New()
	router.POST("/admin/withdrawals/:id/reject", h.RejectWithdrawal)

	reason := "account details mismatch"
	mockWithdrawals.On("Reject", mock.Anything, int64(11), reason).Return(&model.WithdrawalRequest{
		ID:     11,
		Status: model.WithdrawalRejected,
		Reason: &reason,
	}, nil)

	body, _ := json.Marshal(model.RejectWithdrawalRequest{Reason: reason})
	req, _ := http.NewRequest(http.MethodPost, "/admin/withdrawals/11/reject", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.WithdrawalRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.WithdrawalRejected, resp.Status)
}

func TestHandler_ListWithdrawals_StatusFilter(t *testing.T) {
	h, _, _, _, _, mockWithdrawals := newTestHandler(t)

	router := gin.New()
	router.GET("/admin/withdrawals", h.ListWithdrawals)

	pending := model.WithdrawalPending
	mockWithdrawals.On("List", mock.Anything, &pending, 20, 0).Return([]*model.WithdrawalRequest{
		{ID: 11, Status: model.WithdrawalPending},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/admin/withdrawals?status=pending", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.WithdrawalListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}
