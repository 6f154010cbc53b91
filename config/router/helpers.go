package router

import (
	"net/http"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

// OKResult renders as {"success":true}, plus "data" when data is non-nil.
func OKResult(data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
	}
}

// BadRequestResult renders as {"error": message}.
func BadRequestResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Message:    message,
	}
}

// HTMLResult wraps a rendered document for a page handler.
func HTMLResult(body []byte) *PageResult {
	return &PageResult{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}

func PageErrorResult(statusCode int, body string) *PageResult {
	return &PageResult{
		StatusCode: statusCode,
		Body:       []byte(body),
	}
}
