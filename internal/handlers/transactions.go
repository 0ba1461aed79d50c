package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opencre/mockapi/internal/apierrors"
	"github.com/opencre/mockapi/internal/middleware"
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/query"
	"github.com/opencre/mockapi/internal/services"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	service services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler instance.
func NewTransactionHandler(service services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// listRequest carries the raw query parameters of the listing endpoint.
// Everything arrives as a string; parsing and defaulting happen here so
// that only limit/offset can produce a client error.
type listRequest struct {
	StartDate       string `form:"startDate"`
	EndDate         string `form:"endDate"`
	BuyerType       string `form:"buyerType"`
	TransactionType string `form:"transactionType"`
	MinPrice        string `form:"minPrice"`
	MaxPrice        string `form:"maxPrice"`
	Country         string `form:"country"`
	State           string `form:"state"`
	City            string `form:"city"`
	Limit           string `form:"limit,default=20"`
	Offset          string `form:"offset,default=0"`
	SortBy          string `form:"sortBy,default=transactionDate"`
	SortOrder       string `form:"sortOrder,default=desc"`
}

// List handles GET /v1/transactions.
// It validates pagination, then delegates the filter/sort/paginate/enrich
// pipeline to the service layer.
func (h *TransactionHandler) List(c *gin.Context) {
	var req listRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.InvalidPagination(c, "Invalid query parameters.")
		return
	}

	limit, limitErr := strconv.Atoi(req.Limit)
	offset, offsetErr := strconv.Atoi(req.Offset)
	if limitErr != nil || offsetErr != nil || limit <= 0 || offset < 0 {
		apierrors.InvalidPagination(c, "Invalid limit or offset parameters.")
		return
	}

	params := services.ListParams{
		Filters:   buildFilters(req),
		SortBy:    query.ParseSortField(req.SortBy),
		SortOrder: query.ParseSortOrder(req.SortOrder),
		Limit:     limit,
		Offset:    offset,
	}

	result, err := h.service.List(params)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPagination) {
			apierrors.InvalidPagination(c, "Invalid limit or offset parameters.")
			return
		}
		apierrors.Internal(c, "Failed to query transactions.", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /v1/transactions/:transactionId.
func (h *TransactionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transactionId")

	enriched, err := h.service.Get(transactionID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("Transaction with ID '%s' not found.", transactionID))
			return
		}
		apierrors.Internal(c, "Failed to query transaction.", err)
		return
	}

	c.JSON(http.StatusOK, enriched)
}

// Reset handles POST /v1/reset-data.
// It atomically replaces the whole dataset with a freshly generated one.
func (h *TransactionHandler) Reset(c *gin.Context) {
	if log := middleware.GetLogger(c); log != nil {
		log.Info("Received request to reset data", nil)
	}

	if err := h.service.Reset(); err != nil {
		apierrors.RegenerationFailed(c, "Failed to regenerate mock data.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mock data regenerated successfully.",
	})
}

// buildFilters converts raw query strings into the typed filter
// configuration. Values that fail to parse are treated as absent and
// impose no constraint.
func buildFilters(req listRequest) query.Filters {
	var f query.Filters

	if d, err := models.ParseDate(req.StartDate); err == nil && req.StartDate != "" {
		f.StartDate = &d
	}
	if d, err := models.ParseDate(req.EndDate); err == nil && req.EndDate != "" {
		f.EndDate = &d
	}
	if req.TransactionType != "" {
		t := models.TransactionType(req.TransactionType)
		f.TransactionType = &t
	}
	if req.BuyerType != "" {
		b := models.BuyerType(req.BuyerType)
		f.BuyerType = &b
	}
	if v, err := strconv.ParseFloat(req.MinPrice, 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(req.MaxPrice, 64); err == nil {
		f.MaxPrice = &v
	}
	if req.Country != "" {
		f.Country = &req.Country
	}
	if req.State != "" {
		f.State = &req.State
	}
	if req.City != "" {
		f.City = &req.City
	}

	return f
}
