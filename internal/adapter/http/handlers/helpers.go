package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"cleangod/internal/adapter/http/middleware"
	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderDeviceID  = "X-Device-ID"
	HeaderSessionID = "X-Session-ID"
)

// ServicesPath is the listing page a customer starts the wizard from.
const ServicesPath = "/services"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// StepPath is the page for a wizard step.
func StepPath(step entities.WizardStep) string {
	if step == entities.StepServices {
		return ServicesPath
	}
	return "/booking/" + string(step)
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every booking flow can return. It
// returns nil when err is not one of them.
func mapCommonError(c *gin.Context, err error) *pkg.AppError {
	var stepErr *entities.StepError
	switch {
	case errors.As(err, &stepErr):
		return pkg.NewDomainError("STEP_INCOMPLETE", "Complete the previous booking step first", err, http.StatusConflict).
			WithRedirect(StepPath(stepErr.Redirect))
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Sign in to continue", err, http.StatusUnauthorized).
			WithRedirect(middleware.SignInRedirect(c.Request.URL.RequestURI()))
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing client identifier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemRef), errors.Is(err, entities.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_ITEM", "Invalid item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingTierUnknown):
		return pkg.NewDomainErrorSimple("PRICING_TIER_NOT_FOUND", "Pricing option not found", http.StatusNotFound)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

func deviceID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderDeviceID))
}

func sessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderSessionID))
}

func currentUser(c *gin.Context) entities.User {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		log.Printf("[http][handler] no user in context path=%s", c.FullPath())
	}
	return user
}
