package handler

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/apperr"
	"socialapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	errInvalidID     = apperr.Validation("request", "INVALID_ID", "invalid id format")
	errInvalidLimit  = apperr.Validation("request", "INVALID_LIMIT", "invalid limit")
	errInvalidOffset = apperr.Validation("request", "INVALID_OFFSET", "invalid offset")
	errInvalidBody   = apperr.Validation("request", "INVALID_BODY", "invalid request body")
	errFileRequired  = apperr.Validation("request", "FILE_REQUIRED", "file is required")
	errNoPrincipal   = apperr.Unauthenticated("auth", "UNAUTHENTICATED", "authentication required")
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "POST_NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// fail translates a service error into the error envelope. Application
// errors keep their code and message; anything else is logged and reported
// as an internal error.
func fail(c *fiber.Ctx, err error) error {
	if e, ok := apperr.As(err); ok {
		return writeError(c, kindStatus(e.Kind), e.Code, e.Message)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	slog.ErrorContext(c.UserContext(), "request_failed",
		"request_id", requestIDFromCtx(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func kindStatus(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperr.KindUnauthorized:
		return fiber.StatusForbidden
	case apperr.KindInvalidState:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			if message == "" || message == fiber.ErrUnauthorized.Message {
				message = "authentication required"
			}
			return writeError(c, status, "UNAUTHENTICATED", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		case fiber.StatusServiceUnavailable:
			return writeError(c, status, "SERVICE_UNAVAILABLE", "service unavailable")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
