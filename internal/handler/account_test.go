package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spinx-engine/internal/model"
	mocks "spinx-engine/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.AccountService, *mocks.WalletService, *mocks.SettlementService, *mocks.MinesService, *mocks.WithdrawalService) {
	gin.SetMode(gin.TestMode)

	mockAccounts := mocks.NewAccountService(t)
	mockWallet := mocks.NewWalletService(t)
	mockSettlement := mocks.NewSettlementService(t)
	mockMines := mocks.NewMinesService(t)
	mockWithdrawals := mocks.NewWithdrawalService(t)

	h := NewHandler(mockAccounts, mockWallet, mockSettlement, mockMines, mockWithdrawals, zerolog.Nop())
	return h, mockAccounts, mockWallet, mockSettlement, mockMines, mockWithdrawals
}

func TestHandler_Register_Success(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/accounts", h.Register)

	mockAccounts.On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterRequest) bool {
		return req.Username == "spinmaster"
	})).Return(&model.Account{
		ID:           1,
		Username:     "spinmaster",
		ReferralCode: "SPINXSPI1234",
	}, nil)

	body, _ := json.Marshal(model.RegisterRequest{
		Username: "spinmaster",
		Email:    "spin@example.com",
		Password: "s3cret-pass",
	})
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp model.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "0.00", resp.Balance)
	assert.Equal(t, "SPINXSPI1234", resp.ReferralCode)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/accounts", h.Register)

	mockAccounts.On("Register", mock.Anything, mock.Anything).Return(nil, model.ErrUsernameTaken)

	body, _ := json.Marshal(model.RegisterRequest{
		Username: "spinmaster",
		Email:    "spin@example.com",
		Password: "s3cret-pass",
	})
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "USERNAME_TAKEN", resp.Code)
}

func TestHandler_Register_InvalidBody(t *testing.T) {
	h, _, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/accounts", h.Register)

	// password too short for the binding rule
	body, _ := json.Marshal(model.RegisterRequest{
		Username: "spinmaster",
		Email:    "spin@example.com",
		Password: "short",
	})
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/login", h.Login)

	mockAccounts.On("Login", mock.Anything, "spinmaster", "wrong").Return(nil, model.ErrInvalidCredentials)

	body, _ := json.Marshal(model.LoginRequest{Username: "spinmaster", Password: "wrong"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetBalance_Success(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.GET("/accounts/:id/balance", h.GetBalance)

	mockAccounts.On("GetBalance", mock.Anything, int64(1)).Return(&model.BalanceResponse{
		AccountID: 1,
		Balance:   "1096.00",
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/1/balance", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1096.00", resp.Balance)
}

func TestHandler_GetBalance_NotFound(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.GET("/accounts/:id/balance", h.GetBalance)

	mockAccounts.On("GetBalance", mock.Anything, int64(999)).Return(nil, model.ErrAccountNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/999/balance", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ReviewKYC_InvalidVerdict(t *testing.T) {
	h, _, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/admin/accounts/:id/kyc", h.ReviewKYC)

	body := []byte(`{"verdict":"maybe"}`)
	req, _ := http.NewRequest(http.MethodPost, "/admin/accounts/1/kyc", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SuspendAccount_Success(t *testing.T) {
	h, mockAccounts, _, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/admin/accounts/:id/suspend", h.SuspendAccount)

	mockAccounts.On("SetActive", mock.Anything, int64(1), false).Return(nil)

	req, _ := http.NewRequest(http.MethodPost, "/admin/accounts/1/suspend", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "suspended")
}
