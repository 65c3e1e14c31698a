package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /orders
// --------------------------------------------------
//

func (h *Handler) CreateOrder(c *gin.Context) {
	id, st, err := h.service.CreateOrder(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"state":      st,
	})
}

//
// --------------------------------------------------
// GET /orders/:id
// --------------------------------------------------
//

func (h *Handler) GetOrder(c *gin.Context) {
	st, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": st})
}

//
// --------------------------------------------------
// DELETE /orders/:id
// --------------------------------------------------
//

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

//
// --------------------------------------------------
// PATCH /orders/:id
// --------------------------------------------------
//

func (h *Handler) UpdateOrder(c *gin.Context) {
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	st, err := h.service.ApplyPatch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	items := DeriveItems(st, h.service.Catalog())

	c.JSON(http.StatusOK, gin.H{
		"state": st,
		"items": items,
		"total": Total(items),
	})
}

//
// --------------------------------------------------
// GET /orders/:id/items
// --------------------------------------------------
//

func (h *Handler) GetItems(c *gin.Context) {
	items, total, err := h.service.Items(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

//
// --------------------------------------------------
// POST /orders/:id/checkout
// --------------------------------------------------
//

func (h *Handler) Checkout(c *gin.Context) {
	var body struct {
		PaymentMethod string `json:"payment_method"`
	}
	// Body is optional for free orders.
	_ = c.ShouldBindJSON(&body)

	st, items, err := h.service.Checkout(c.Request.Context(), c.Param("id"), body.PaymentMethod)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	case errors.Is(err, ErrIncompleteOrder), errors.Is(err, ErrNoPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": st,
		"items": items,
		"total": Total(items),
	})
}
