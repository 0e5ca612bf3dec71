package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/mock_booking_handler.go -package=mocks

type BookingService interface {
	FindBookingByID(ctx context.Context, id string) (bk.Record, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.Record, error)
	CreateBooking(ctx context.Context, booking bk.NewBooking) (bk.Record, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register expects BearerAuth to run before the handlers of rg.
func (h *BookingHandler) Register(rg *gin.RouterGroup, create ...gin.HandlerFunc) {
	rg.POST("", append(create, h.Create)...)
	rg.GET("/user/:userId", h.GetByUser)
	rg.GET("/:id", h.GetByID)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to fetch booking",
		})
		return
	}

	if booking.UserID != c.GetString(UserIDKey) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "booking not found",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetByUser(c *gin.Context) {
	userID := c.Param("userId")

	if userID != c.GetString(UserIDKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "not allowed"})
		return
	}

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), userID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to get bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var booking bk.NewBooking

	if err := c.ShouldBindJSON(&booking); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "failed to parse JSON body",
		})
		return
	}

	userID := c.GetString(UserIDKey)
	booking.UserID = strings.TrimSpace(booking.UserID)

	if len(booking.UserID) == 0 {
		booking.UserID = userID
	}

	if booking.UserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "token does not belong to this user",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), booking)

	if err != nil {
		c.Error(err)
		switch {
		case bk.IsInputError(err), errors.Is(err, bk.ErrFieldNotFound), errors.Is(err, bk.ErrFieldUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, bk.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, inserted)
}
