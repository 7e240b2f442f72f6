package api

import (
	"errors"
	"net/http"

	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	resdto "github.com/rico33631/smart-park/internal/handler/dto/response"
	"github.com/rico33631/smart-park/internal/handler/httperr"
	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	cmds commands.ParkingCommands
	q    queries.ParkingQueries
}

func NewParkingHandler(cmds commands.ParkingCommands, q queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{cmds: cmds, q: q}
}

// @Summary Update space occupancy
// @Description Apply a detection-feed occupancy reading to a space
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.OccupancyUpdateRequest true "Occupancy update"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/occupancy [post]
func (h *ParkingHandler) UpdateOccupancy(c *gin.Context) {
	var req reqdto.OccupancyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.SetOccupancy(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrSpaceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyResult(result))
}

// @Summary Get lot status
// @Description Current occupancy counts and per-space detail
// @Tags parking
// @Produce json
// @Success 200 {object} resdto.LotStatusResponse
// @Router /parking/status [get]
func (h *ParkingHandler) Status(c *gin.Context) {
	status, err := h.q.LotStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotStatusView(status))
}

// @Summary Recent events
// @Description Latest entry/exit events, newest first
// @Tags parking
// @Produce json
// @Param limit query int false "Max events to return"
// @Success 200 {array} resdto.EventResponse
// @Router /events/recent [get]
func (h *ParkingHandler) RecentEvents(c *gin.Context) {
	var q reqdto.RecentEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	events, err := h.q.RecentEvents(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.EventResponse, len(events))
	for i, ev := range events {
		response[i] = resdto.FromEventView(ev)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Initialize parking lot
// @Description Rebuild the space catalog as an empty grid
// @Tags parking
// @Produce json
// @Success 200 {object} resdto.InitializeResponse
// @Router /initialize [post]
func (h *ParkingHandler) Initialize(c *gin.Context) {
	result, err := h.cmds.InitializeLot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitializeResult(result))
}
