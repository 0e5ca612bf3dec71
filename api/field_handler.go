package api

import (
	"context"
	"errors"
	"net/http"

	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=field_handler.go -destination=mocks/mock_field_handler.go -package=mocks

type FieldService interface {
	FindFieldByID(ctx context.Context, id string) (bk.Field, error)
	CreateField(ctx context.Context, field bk.NewField) (bk.Field, error)
	UpdateField(ctx context.Context, id string, update bk.FieldUpdate) (bk.Field, error)
	DeleteField(ctx context.Context, id string) error
}

type FieldHandler struct {
	service FieldService
}

func NewFieldHandler(service FieldService) *FieldHandler {
	return &FieldHandler{service: service}
}

// Register serves GET publicly and runs write in front of the handlers that
// change fields.
func (h *FieldHandler) Register(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	rg.GET("/:id", h.GetByID)
	rg.POST("", withHandler(write, h.Create)...)
	rg.PUT("/:id", withHandler(write, h.Update)...)
	rg.DELETE("/:id", withHandler(write, h.Delete)...)
}

func withHandler(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(middleware)+1)
	return append(append(chain, middleware...), handler)
}

func (h *FieldHandler) GetByID(c *gin.Context) {
	field, err := h.service.FindFieldByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "field not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch field"})
		return
	}

	c.IndentedJSON(http.StatusOK, field)
}

func (h *FieldHandler) Create(c *gin.Context) {
	var field bk.NewField

	if err := c.ShouldBindJSON(&field); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateField(c.Request.Context(), field)

	if err != nil {
		c.Error(err)
		h.writeError(c, err, "failed to create field")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *FieldHandler) Update(c *gin.Context) {
	var update bk.FieldUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateField(c.Request.Context(), c.Param("id"), update)

	if err != nil {
		c.Error(err)
		h.writeError(c, err, "failed to update field")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *FieldHandler) Delete(c *gin.Context) {
	err := h.service.DeleteField(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		h.writeError(c, err, "failed to delete field")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "field deleted"})
}

func (h *FieldHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, bk.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "field not found"})
	case errors.Is(err, bk.ErrInvalidField):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, bk.ErrFieldHasBookings):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
