//go:build unit

package api_test

import (
	"context"
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

type stubParkingCommands struct {
	occupancy  *commands.OccupancyResult
	occErr     error
	initialize *commands.InitializeResult
	initErr    error
}

func (s *stubParkingCommands) SetOccupancy(_ context.Context, _ reqdto.OccupancyUpdateRequest) (*commands.OccupancyResult, error) {
	return s.occupancy, s.occErr
}

func (s *stubParkingCommands) InitializeLot(_ context.Context) (*commands.InitializeResult, error) {
	return s.initialize, s.initErr
}

type stubParkingQueries struct {
	status *queries.LotStatusView
	events []*queries.EventView
}

func (s *stubParkingQueries) LotStatus(_ context.Context) (*queries.LotStatusView, error) {
	return s.status, nil
}

func (s *stubParkingQueries) RecentEvents(_ context.Context, _ int) ([]*queries.EventView, error) {
	return s.events, nil
}

type ParkingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *stubParkingCommands
	q      *stubParkingQueries
}

func (s *ParkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cmds = &stubParkingCommands{}
	s.q = &stubParkingQueries{}
	handler := api.NewParkingHandler(s.cmds, s.q)

	s.router.POST("/parking/occupancy", handler.UpdateOccupancy)
	s.router.GET("/parking/status", handler.Status)
	s.router.GET("/events/recent", handler.RecentEvents)
	s.router.POST("/initialize", handler.Initialize)
}

func TestParkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParkingHandlerTestSuite))
}

func (s *ParkingHandlerTestSuite) TestUpdateOccupancy() {
	url := "/parking/occupancy"

	s.Run("success: returns the applied change", func() {
		s.cmds.occupancy = &commands.OccupancyResult{SpaceNumber: "P001", Changed: true}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"space_number": "P001",
			"is_occupied":  true,
		})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("P001", body["space_number"])
		s.Equal(true, body["changed"])
	})

	s.Run("error: 400 when is_occupied is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"space_number": "P001",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown space", func() {
		s.cmds.occupancy = nil
		s.cmds.occErr = commands.ErrSpaceNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"space_number": "P999",
			"is_occupied":  true,
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})
}

func (s *ParkingHandlerTestSuite) TestStatus() {
	s.q.status = &queries.LotStatusView{
		Timestamp:     time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
		Total:         50,
		Occupied:      12,
		Available:     38,
		OccupancyRate: 24.0,
	}

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/status", nil)

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(float64(50), body["total"])
	s.Equal(float64(38), body["available"])
}

func (s *ParkingHandlerTestSuite) TestRecentEvents() {
	s.q.events = []*queries.EventView{
		{SpaceNumber: "P003", EventType: "entry", Confidence: 0.97},
	}

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/recent?limit=10", nil)

	var body []map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
	s.Equal("entry", body[0]["event_type"])
}

func (s *ParkingHandlerTestSuite) TestInitialize() {
	s.cmds.initialize = &commands.InitializeResult{Removed: 50, Created: 50}

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/initialize", nil)

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(float64(50), body["created"])
}
