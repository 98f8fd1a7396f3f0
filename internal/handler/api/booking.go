package api

import (
	"net/http"

	reqdto "roombooking/internal/handler/dto/request"
	resdto "roombooking/internal/handler/dto/response"
	"roombooking/internal/handler/httperr"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.queries.CheckAvailability(c.Request.Context(), req.RoomID, req.Date)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.commands.Confirm(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	if result.Conflict != nil {
		c.JSON(http.StatusConflict, resdto.ConflictResponse{
			Message:  "Room is already booked for this date",
			Existing: *resdto.FromExistingBookingView(result.Conflict),
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing email"), "email parameter is required")
		return
	}

	views, err := h.queries.ListByClient(c.Request.Context(), email)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":    email,
		"count":    len(views),
		"bookings": resdto.FromBookingViews(views),
	})
}

func (h *BookingHandler) All(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(views),
		"bookings": resdto.FromBookingViews(views),
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// abortWithDomainError maps marker errors from the usecase layer onto HTTP
// statuses.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed")
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errs.Is(err, errs.ErrForecastNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Forecast not found")
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
