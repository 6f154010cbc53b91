package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is the outcome of an API handler. It renders as the public
// wire shapes: 2xx bodies are {"success":true} (plus "data" when a handler
// returns one), 4xx/5xx bodies are {"error":"<message>"}.
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
}

type HandlerFunction func(*RequestContext) *ServiceResult

// PageResult is the outcome of an HTML page handler: a rendered document
// rather than a JSON body.
type PageResult struct {
	StatusCode int
	Body       []byte
}

type PageHandlerFunction func(*RequestContext) *PageResult

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	if result.IsError() {
		return gin.H{"error": result.Message}
	}

	if result.Data != nil {
		return gin.H{"success": true, "data": result.Data}
	}

	return gin.H{"success": true}
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}
