// Package response contains the helper types and functions that build
// the uniform JSON envelope returned by every HTTP handler, and the
// mapping from the domain error taxonomy to HTTP status codes.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/grigorevsd/subscription-service/internal/errs"
)

// Response is the standard JSON envelope of the service. Message and
// Data are omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrMsgUnexpected is the generic message used for failures that carry
// no domain tag. Internal details never reach the caller.
const ErrMsgUnexpected = "An unexpected error occurred. Please try again later."

// Success returns a successful Response carrying only data.
func Success(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// SuccessWithMessage returns a successful Response with a message and
// optional data.
func SuccessWithMessage(msg string, data any) Response {
	return Response{
		Success: true,
		Message: msg,
		Data:    data,
	}
}

// Error returns a failed Response with the given message.
func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

// ValidationError builds the "Validation failed" Response from
// validator errors. Data holds a field name to message map; field names
// come from the json tags.
func ValidationError(verrs validator.ValidationErrors) Response {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.ActualTag() {
		case "required":
			fields[name] = fmt.Sprintf("%s is required", fieldLabel(name))
		case "email":
			fields[name] = fmt.Sprintf("%s should be valid", fieldLabel(name))
		case "oneof":
			fields[name] = fmt.Sprintf("%s must be one of %s", fieldLabel(name), fe.Param())
		default:
			fields[name] = fmt.Sprintf("%s is not valid", fieldLabel(name))
		}
	}
	return Response{
		Success: false,
		Message: "Validation failed",
		Data:    fields,
	}
}

// RenderError writes the envelope and status code for a domain error:
// not-found tags map to 404, conflict tags to 400 with the message
// passed through verbatim, anything else to 500 with a generic message.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errs.IsNotFound(err):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, Error(err.Error()))
	case errs.IsConflict(err):
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, Error(err.Error()))
	default:
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, Error(ErrMsgUnexpected))
	}
}

// fieldLabel turns a json field name into the label used in validation
// messages, e.g. "subscriptionTypeId" into "Subscription type ID".
func fieldLabel(name string) string {
	switch name {
	case "subscriptionTypeId":
		return "Subscription type ID"
	case "startDate":
		return "Start date"
	case "endDate":
		return "End date"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
