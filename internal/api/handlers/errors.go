package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/pkg/response"
	"github.com/linskybing/logistics-go/pkg/utils"
)

// respondError maps a service error onto a status code and error body.
func respondError(c *gin.Context, err error) {
	var ve *application.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: ve.Message, Fields: ve.Fields})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, application.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:  err.Error(),
			Fields: map[string]string{"old_password": err.Error()},
		})
	case errors.Is(err, application.ErrPermission):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	}
}

var fieldLabels = map[string]string{
	"Email":               "email",
	"Password":            "password",
	"FirstName":           "first name",
	"LastName":            "last name",
	"OldPassword":         "old password",
	"NewPassword":         "new password",
	"CustomerName":        "customer name",
	"DeliveryAddress":     "delivery address",
	"ProductName":         "product name",
	"DocketNumber":        "docket number",
	"VehicleType":         "vehicle type",
	"NumberOfBags":        "number of bags",
	"BagWeight":           "bag weight",
	"AttachmentType":      "attachment type",
	"AssignedTo":          "assigned to",
	"FieldLabel":          "field label",
	"FieldType":           "field type",
	"FieldIDs":            "field ids",
	"PolicyArea":          "policy area",
	"ResponsibleRole":     "responsible role",
	"DocumentDate":        "document date",
	"FormData":            "form data",
	"PlannedDeliveryDate": "planned delivery date",
}

// respondBindError turns binding failures into friendly per-field messages.
func respondBindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	fields := make(map[string]string, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required", "required_unless":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
		fields[strings.ReplaceAll(lbl, " ", "_")] = msg
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; "), Fields: fields})
}

// currentUser returns the identity loaded by the auth middleware, or writes a
// 401 and reports false.
func currentUser(c *gin.Context) (user.Identity, bool) {
	identity, err := utils.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return user.Identity{}, false
	}
	return identity, true
}

// pathID parses a UUID path parameter, or writes a 400 and reports false.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUIDParam(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return id, true
}
