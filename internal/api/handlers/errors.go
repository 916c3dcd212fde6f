package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/application/scheduler"
	"github.com/linskybing/adoption-tracker/pkg/response"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrAnimalNotFound),
		errors.Is(err, application.ErrFormNotFound),
		errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrUserHasAnimals),
		errors.Is(err, scheduler.ErrSweepSkipped):
		return http.StatusConflict
	case errors.Is(err, application.ErrReservedAdminUser):
		return http.StatusForbidden
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), response.ErrorResponse{Error: err.Error()})
}

// respond writes data with status on success. A reconcile warning means the
// change was committed, so the caller still gets 200 with the warning text.
func respond(c *gin.Context, status int, data any, err error) {
	switch {
	case err == nil:
		if data == nil {
			c.Status(status)
			return
		}
		c.JSON(status, data)
	case application.IsReconcileWarning(err):
		_ = c.Error(err)
		c.JSON(http.StatusOK, response.WarningResponse{Data: data, Warning: err.Error()})
	default:
		respondError(c, err)
	}
}

// bindingMessage turns validator errors into "field is required"-style text.
func bindingMessage(err error, labels map[string]string) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
