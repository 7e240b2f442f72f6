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

type BookingHandler struct {
	cmds         commands.BookingCommands
	bookingQ     queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	bookingQ queries.BookingQueries,
	availability queries.AvailabilityQueries,
) *BookingHandler {
	return &BookingHandler{
		cmds:         cmds,
		bookingQ:     bookingQ,
		availability: availability,
	}
}

// @Summary List available spaces
// @Description List spaces free for the given time slot
// @Tags bookings
// @Produce json
// @Param start_time query string true "Slot start (RFC3339)"
// @Param end_time query string true "Slot end (RFC3339)"
// @Success 200 {array} resdto.SpaceResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/available [get]
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	spaces, err := h.availability.ListAvailable(c.Request.Context(), q.StartTime, q.EndTime)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidTimeSlot) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.SpaceResponse, len(spaces))
	for i, sp := range spaces {
		response[i] = resdto.FromSpaceView(sp)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Quote a booking
// @Description Price a time slot for a space without reserving it
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.availability.Quote(c.Request.Context(), req.SpaceNumber, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidTimeSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
		case errors.Is(err, queries.ErrSpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary Create booking
// @Description Reserve a space for a time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing or invalid customer fields", nil)
		case errors.Is(err, commands.ErrBookingPolicy):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking policy violation", nil)
		case errors.Is(err, commands.ErrSpaceUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Space not available for selected time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking details by reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.bookingQ.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings, newest first, with optional status and date filters
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status"
// @Param from_date query string false "Only bookings starting at or after this time (RFC3339)"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.bookingQ.List(c.Request.Context(), q.ToFilter(), q.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel a booking before its cancellation deadline
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{reference}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	view, err := h.cmds.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrCancellationTooLate):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cancellation deadline has passed", nil)
		case errors.Is(err, commands.ErrInvalidBookingState):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking state does not allow cancellation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
