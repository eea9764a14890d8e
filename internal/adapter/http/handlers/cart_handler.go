package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cleangod/internal/adapter/http/dto/request"
	response "cleangod/internal/adapter/http/dto/response"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the per-device cart. The device is identified by the
// X-Device-ID header.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart returns the cart with prices refreshed from the catalog.
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), deviceID(c))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// AddItem adds a catalog item or increases the quantity of an existing line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	ref, err := payload.ToItemRef()
	if err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.AddItem(c.Request.Context(), deviceID(c), ref)
	if err != nil {
		h.fail(c, "add", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// UpdateItem sets a line quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemType, err := request.ParseItemType(c.Param("type"))
	if err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.UpdateQuantity(c.Request.Context(), deviceID(c), itemType, c.Param("id"), *payload.Quantity)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemType, err := request.ParseItemType(c.Param("type"))
	if err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.RemoveItem(c.Request.Context(), deviceID(c), itemType, c.Param("id"))
	if err != nil {
		h.fail(c, "remove", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), deviceID(c)); err != nil {
		h.fail(c, "clear", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) fail(c *gin.Context, op string, err error) {
	log.Printf("[cart][handler] %s failed device=%s err=%v", op, deviceID(c), err)
	abortWithError(c, mapCartError(c, err))
}

func mapCartError(c *gin.Context, err error) *pkg.AppError {
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item is not in the cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCartChange):
		return errInvalidRequest
	default:
		return internalError(err)
	}
}
