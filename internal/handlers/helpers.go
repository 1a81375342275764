package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/apptrackr/backend/internal/apierrors"
)

// respondError maps a service error onto the wire: taxonomy errors keep
// their status and message, everything else becomes a generic 500 body.
func respondError(c *gin.Context, err error) {
	c.JSON(apierrors.Status(err), gin.H{"msg": apierrors.Message(err)})
}

// bindErrorMessage turns a gin binding failure into the first violated
// field's message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("please provide %s", field)
		case "email":
			return "please provide a valid email"
		case "min":
			return fmt.Sprintf("%s should be at least %s characters", field, fe.Param())
		case "max":
			return fmt.Sprintf("%s should not be more than %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}
	return "invalid request body"
}

// parseID reads the :id route param. A malformed id behaves like a missing
// record, the same as an ownership mismatch.
func parseID(c *gin.Context, name string) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apierrors.NotFound(fmt.Sprintf("no %s with id %s", name, raw))
	}
	return uint(id), nil
}
