package httpserver

import (
	"context"
	"errors"
	"net/http"

	"customer-lookup/internal/domain"
	customersvc "customer-lookup/internal/service/customer"
	"github.com/gin-gonic/gin"
)

// DirectoryService is the customer directory the reference API serves.
type DirectoryService interface {
	List(ctx context.Context, in customersvc.ListInput) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
}

type directoryHandlers struct {
	svc DirectoryService
}

func (h directoryHandlers) list(c *gin.Context) {
	var in customersvc.ListInput
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customers, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		writeDirectoryError(c, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h directoryHandlers) get(c *gin.Context) {
	customer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func writeDirectoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
