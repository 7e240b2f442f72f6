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
	resdto "github.com/rico33631/smart-park/internal/handler/dto/response"
	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"
	"github.com/rico33631/smart-park/tests/common/builder"
	"github.com/rico33631/smart-park/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createView *queries.BookingView
	createErr  error
	cancelView *queries.BookingView
	cancelErr  error
}

func (s *stubBookingCommands) CreateBooking(_ context.Context, _ reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	return s.createView, s.createErr
}

func (s *stubBookingCommands) CancelBooking(_ context.Context, _ string) (*queries.BookingView, error) {
	return s.cancelView, s.cancelErr
}

type stubBookingQueries struct {
	view    *queries.BookingView
	getErr  error
	items   []*queries.BookingListItem
	listErr error
}

func (s *stubBookingQueries) GetByReference(_ context.Context, _ string) (*queries.BookingView, error) {
	return s.view, s.getErr
}

func (s *stubBookingQueries) List(_ context.Context, _ queries.BookingFilter, _ int) ([]*queries.BookingListItem, error) {
	return s.items, s.listErr
}

type stubAvailabilityQueries struct {
	spaces   []*queries.SpaceView
	listErr  error
	quote    *queries.QuoteView
	quoteErr error
}

func (s *stubAvailabilityQueries) ListAvailable(_ context.Context, _, _ time.Time) ([]*queries.SpaceView, error) {
	return s.spaces, s.listErr
}

func (s *stubAvailabilityQueries) Quote(_ context.Context, _ string, _, _ time.Time) (*queries.QuoteView, error) {
	return s.quote, s.quoteErr
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cmds         *stubBookingCommands
	bookingQ     *stubBookingQueries
	availability *stubAvailabilityQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cmds = &stubBookingCommands{}
	s.bookingQ = &stubBookingQueries{}
	s.availability = &stubAvailabilityQueries{}
	handler := api.NewBookingHandler(s.cmds, s.bookingQ, s.availability)

	s.router.GET("/bookings/available", handler.GetAvailable)
	s.router.POST("/bookings/quote", handler.Quote)
	s.router.POST("/bookings", handler.Create)
	s.router.GET("/bookings", handler.List)
	s.router.GET("/bookings/:reference", handler.Get)
	s.router.POST("/bookings/:reference/cancel", handler.Cancel)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingView() *queries.BookingView {
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		Reference:     "BK20260315080000ABCD",
		SpaceNumber:   "P001",
		CustomerName:  "Dana Cole",
		CustomerEmail: "dana@example.com",
		VehicleNumber: "KA-01-4821",
		StartTime:     start,
		EndTime:       start.Add(3 * time.Hour),
		AmountCents:   1500,
		Status:        "pending",
		PaymentStatus: "pending",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequest()

	s.Run("success: returns 201 Created", func() {
		s.cmds.createView = sampleBookingView()
		s.cmds.createErr = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var actualRes resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &actualRes)

		expected := &resdto.BookingResponse{
			BookingReference: "BK20260315080000ABCD",
			SpaceNumber:      "P001",
			CustomerName:     "Dana Cole",
			CustomerEmail:    "dana@example.com",
			VehicleNumber:    "KA-01-4821",
			TotalAmountCents: 1500,
			Status:           "pending",
			PaymentStatus:    "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "StartTime", "EndTime", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			s.T().Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"space_number": "P001",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on invalid email", func() {
		bad := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.CustomerEmail = "not-an-email" }).
			BuildRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"space not found", commands.ErrSpaceNotFound, http.StatusNotFound, "Space not found"},
			{"invalid time slot", commands.ErrInvalidTimeSlot, http.StatusBadRequest, "Invalid time slot"},
			{"policy violation", commands.ErrBookingPolicy, http.StatusUnprocessableEntity, "Booking policy violation"},
			{"space unavailable", commands.ErrSpaceUnavailable, http.StatusConflict, "Space not available"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.cmds.createView = nil
				s.cmds.createErr = tc.commandsError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking", func() {
		s.bookingQ.view = sampleBookingView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK20260315080000ABCD", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("P001", body["space_number"])
	})

	s.Run("error: 404 when unknown", func() {
		s.bookingQ.view = nil
		s.bookingQ.getErr = queries.ErrBookingNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK00000000000000XXXX", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns list items", func() {
		s.bookingQ.items = []*queries.BookingListItem{
			{Reference: "BK1", SpaceNumber: "P001", Status: "pending"},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=pending", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on invalid status filter", func() {
		s.bookingQ.items = nil
		s.bookingQ.listErr = queries.ErrInvalidStatus

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=parked", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	url := "/bookings/BK20260315080000ABCD/cancel"

	s.Run("success: returns the cancelled booking", func() {
		view := sampleBookingView()
		view.Status = "cancelled"
		s.cmds.cancelView = view

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body["status"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"not found", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"too late", commands.ErrCancellationTooLate, http.StatusUnprocessableEntity, "deadline has passed"},
			{"wrong state", commands.ErrInvalidBookingState, http.StatusConflict, "state does not allow"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.cmds.cancelView = nil
				s.cmds.cancelErr = tc.commandsError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetAvailable() {
	s.Run("success: returns free spaces", func() {
		s.availability.spaces = []*queries.SpaceView{
			{Number: "P001", HourlyRateCents: 500},
		}

		url := "/bookings/available?start_time=2026-03-15T10:00:00Z&end_time=2026-03-15T13:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 when the slot parameters are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/available", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"

	s.Run("success: returns the quote", func() {
		s.availability.quote = &queries.QuoteView{
			SpaceNumber:     "P001",
			DurationHours:   3,
			HourlyRateCents: 500,
			AmountCents:     1500,
			Currency:        "USD",
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.QuoteRequest{
			SpaceNumber: "P001",
			StartTime:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC),
		})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(1500), body["total_cost_cents"])
	})

	s.Run("error: 404 for an unknown space", func() {
		s.availability.quote = nil
		s.availability.quoteErr = queries.ErrSpaceNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.QuoteRequest{
			SpaceNumber: "P999",
			StartTime:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})
}
