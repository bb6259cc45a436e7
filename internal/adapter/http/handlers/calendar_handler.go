package handlers

import (
	"errors"
	"net/http"
	"time"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	oauthStateCookie = "calendar_oauth_state"
	oauthStateMaxAge = 10 * 60
)

// CalendarHandler covers the calendar connection, the booking page and the admin
// event endpoints.
type CalendarHandler struct {
	pageRenderer
	calendar     usecase.ICalendarUseCase
	loc          *time.Location
	secureCookie bool
	now          func() time.Time
}

func NewCalendarHandler(calendar usecase.ICalendarUseCase, content usecase.IContentUseCase, loc *time.Location, secureCookie bool) *CalendarHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandler{
		pageRenderer: pageRenderer{content: content},
		calendar:     calendar,
		loc:          loc,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// Auth starts the OAuth consent flow. The state is echoed back through a cookie.
func (h *CalendarHandler) Auth(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/calendar", "", h.secureCookie, true)
	c.Redirect(http.StatusFound, h.calendar.AuthURL(state))
}

func (h *CalendarHandler) Callback(c *gin.Context) {
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		logrus.Warn("[calendar][handler] oauth state mismatch")
		h.errorPage(c, http.StatusBadRequest, "Calendar connection failed", "The authorization request expired. Please try again.")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/calendar", "", h.secureCookie, true)

	if msg := c.Query("error"); msg != "" {
		h.errorPage(c, http.StatusBadRequest, "Calendar connection failed", msg)
		return
	}
	if err := h.calendar.Connect(c.Request.Context(), c.Query("code")); err != nil {
		logrus.WithError(err).Error("[calendar][handler] connect failed")
		status := http.StatusBadGateway
		if errors.Is(err, usecase.ErrInvalidBooking) {
			status = http.StatusBadRequest
		}
		h.errorPage(c, status, "Calendar connection failed", "The calendar could not be connected.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/book-appointment")
}

// Slots godoc
// @Summary Free consultation slots for a day
// @Tags calendar
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param duration query int false "Minutes, defaults to 60"
// @Success 200 {object} response.SlotsResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /api/calendar/slots [get]
func (h *CalendarHandler) Slots(c *gin.Context) {
	day, err := request.ParseSlotDay(c.Query("date"), h.loc, h.now())
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_DATE", "date must be YYYY-MM-DD", http.StatusBadRequest))
		return
	}
	duration := time.Duration(queryInt(c, "duration", int(entities.DefaultSlotDuration/time.Minute))) * time.Minute

	slots, err := h.calendar.AvailableSlots(c.Request.Context(), day, duration)
	if err != nil {
		respondError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSlots(day.Format("2006-01-02"), slots))
}

func (h *CalendarHandler) BookPage(c *gin.Context) {
	var flash *Flash
	if c.Query("booked") == "1" {
		flash = &Flash{Level: "success", Message: "Your consultation is booked. A calendar invitation is on its way."}
	}
	h.renderBooking(c, http.StatusOK, flash)
}

// Book accepts the booking form, or JSON from scripts, which gets the event back.
func (h *CalendarHandler) Book(c *gin.Context) {
	wantsJSON := c.ContentType() == binding.MIMEJSON

	var req request.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		h.bookingFailed(c, wantsJSON, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	in, err := req.ToInput(h.loc)
	if err != nil {
		h.bookingFailed(c, wantsJSON, pkg.NewDomainError("INVALID_START_TIME", err.Error(), err, http.StatusBadRequest))
		return
	}

	event, err := h.calendar.Book(c.Request.Context(), in)
	if err != nil {
		logrus.WithError(err).WithField("start", in.Start).Warn("[calendar][handler] booking failed")
		h.bookingFailed(c, wantsJSON, mapCalendarError(err))
		return
	}
	if wantsJSON {
		c.JSON(http.StatusCreated, event)
		return
	}
	c.Redirect(http.StatusSeeOther, "/book-appointment?booked=1")
}

func (h *CalendarHandler) bookingFailed(c *gin.Context, wantsJSON bool, appErr *pkg.AppError) {
	if wantsJSON {
		respondError(c, appErr)
		return
	}
	h.renderBooking(c, appErr.HTTPStatus, &Flash{Level: "error", Message: appErr.Message})
}

func (h *CalendarHandler) renderBooking(c *gin.Context, status int, flash *Flash) {
	ctx := c.Request.Context()
	connected, err := h.calendar.Connected(ctx)
	if err != nil {
		logrus.WithError(err).Warn("[calendar][handler] connection state unavailable")
	}
	services, err := h.content.ActiveServices(ctx)
	if err != nil {
		logrus.WithError(err).Warn("[page][handler] services unavailable for booking form")
	}
	data := gin.H{"Connected": connected, "Services": services}
	if flash != nil {
		data["Flash"] = flash
	}
	h.html(c, status, "book_appointment.html", "Book a consultation", data)
}

// ListEvents godoc
// @Summary List booked consultations
// @Tags admin
// @Produce json
// @Success 200 {array} entities.CalendarEvent
// @Security AdminKey
// @Router /v1/admin/calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events, err := h.calendar.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListUpcoming returns the next events straight from the external calendar.
func (h *CalendarHandler) ListUpcoming(c *gin.Context) {
	events, err := h.calendar.ListUpcoming(c.Request.Context(), queryInt(c, "max", usecase.DefaultUpcomingEvents))
	if err != nil {
		respondError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEvent godoc
// @Summary Reschedule or rename a consultation
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param body body request.EventUpdateRequest true "Fields to change"
// @Success 200 {object} entities.CalendarEvent
// @Security AdminKey
// @Router /v1/admin/calendar/events/{id} [patch]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	var req request.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	event, err := h.calendar.UpdateEvent(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	if err := h.calendar.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCalendarError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCalendarNotConnected):
		return pkg.NewDomainErrorSimple("CALENDAR_NOT_CONNECTED", "Online booking is not available right now", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidBooking):
		return pkg.NewDomainError("INVALID_BOOKING", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlotUnavailable):
		return pkg.NewDomainErrorSimple("SLOT_UNAVAILABLE", "That time is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
