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

// CatalogHandler exposes catalog reads, active coupons and price quotes.
type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
	coupons usecase.ICouponUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase, coupons usecase.ICouponUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, coupons: coupons}
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[catalog][handler] get service failed id=%s err=%v", c.Param("id"), err)
		abortWithError(c, mapCatalogError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[catalog][handler] get product failed id=%s err=%v", c.Param("id"), err)
		abortWithError(c, mapCatalogError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// ListCoupons returns the coupons applicable right now.
func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.coupons.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("[coupon][handler] list failed err=%v", err)
		abortWithError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCoupons(coupons))
}

// Quote prices a subtotal with an optional coupon code. An unknown code is
// not an error; coupon_applied is false in that case.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	subtotal := *payload.Subtotal
	quote, err := h.coupons.Quote(c.Request.Context(), subtotal, payload.CouponCode)
	if err != nil {
		log.Printf("[coupon][handler] quote failed subtotal=%v code=%q err=%v", subtotal, payload.CouponCode, err)
		abortWithError(c, mapCatalogError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapCatalogError(c *gin.Context, err error) *pkg.AppError {
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidSubtotal) {
		return errInvalidRequest
	}
	return internalError(err)
}
