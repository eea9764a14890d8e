package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cleangod/internal/adapter/http/dto/request"
	response "cleangod/internal/adapter/http/dto/response"
	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

func (h *AddressHandler) ListAddresses(c *gin.Context) {
	user := currentUser(c)
	list, err := h.usecase.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[address][handler] list failed user_id=%s err=%v", user.ID, err)
		abortWithError(c, mapAddressError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddresses(list))
}

func (h *AddressHandler) AddAddress(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, pkg.NewDomainErrorSimple("INVALID_ADDRESS", "Invalid address", http.StatusBadRequest))
		return
	}

	user := currentUser(c)
	created, err := h.usecase.Add(c.Request.Context(), user.ID, payload.ToEntity())
	if err != nil {
		log.Printf("[address][handler] add failed user_id=%s err=%v", user.ID, err)
		abortWithError(c, mapAddressError(c, err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAddress(created))
}

func mapAddressError(c *gin.Context, err error) *pkg.AppError {
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrInvalidAddress):
		return pkg.NewDomainErrorSimple("INVALID_ADDRESS", "Invalid address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
