//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/handler/api"
	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"
	"github.com/rico33631/smart-park/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubPaymentCommands struct {
	view *queries.PaymentView
	err  error
}

func (s *stubPaymentCommands) ProcessPayment(_ context.Context, _ reqdto.ProcessPaymentRequest) (*queries.PaymentView, error) {
	return s.view, s.err
}

type stubPaymentQueries struct {
	view *queries.PaymentView
	err  error
}

func (s *stubPaymentQueries) GetByReference(_ context.Context, _ string) (*queries.PaymentView, error) {
	return s.view, s.err
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *stubPaymentCommands
	q      *stubPaymentQueries
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cmds = &stubPaymentCommands{}
	s.q = &stubPaymentQueries{}
	handler := api.NewPaymentHandler(s.cmds, s.q)

	s.router.POST("/payments/process", handler.Process)
	s.router.GET("/payments/:reference", handler.Get)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func samplePaymentView() *queries.PaymentView {
	bookingRef := "BK20260315080000ABCD"
	txn := "demo_txn_482913"
	return &queries.PaymentView{
		Reference:        "PAY20260315080001WXYZ",
		BookingReference: &bookingRef,
		AmountCents:      1500,
		Currency:         "USD",
		Method:           "card",
		Gateway:          "demo",
		GatewayTxnID:     &txn,
		Status:           "completed",
		PaymentTime:      time.Date(2026, 3, 15, 8, 0, 1, 0, time.UTC),
	}
}

func (s *PaymentHandlerTestSuite) TestProcess() {
	url := "/payments/process"
	reqBody := reqdto.ProcessPaymentRequest{BookingReference: "BK20260315080000ABCD"}

	s.Run("success: returns 201 Created", func() {
		s.cmds.view = samplePaymentView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("PAY20260315080001WXYZ", body["payment_reference"])
		s.Equal("completed", body["status"])
	})

	s.Run("error: 400 on missing booking reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"booking not found", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"already paid", commands.ErrAlreadyPaid, http.StatusConflict, "already paid"},
			{"wrong state", commands.ErrInvalidBookingState, http.StatusConflict, "state does not allow"},
			{"lost the slot race", commands.ErrSpaceUnavailable, http.StatusConflict, "no longer available"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.cmds.view = nil
				s.cmds.err = tc.commandsError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestGet() {
	s.Run("success: returns the payment", func() {
		s.q.view = samplePaymentView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/PAY20260315080001WXYZ", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("BK20260315080000ABCD", body["booking_reference"])
	})

	s.Run("error: 404 when unknown", func() {
		s.q.view = nil
		s.q.err = queries.ErrPaymentNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/PAY00000000000000XXXX", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}
