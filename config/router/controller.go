package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arroyodev/illumibot-waitlist/pkg/ratelimit"
)

func normalizePath(controller *RESTController, relativePath string) string {
	path := controller.mountPoint

	if relativePath != "" {
		path = path + "/" + relativePath
	}

	if path[0] != '/' {
		path = "/" + path
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return strings.ReplaceAll(path, "//", "/")
}

func (routerService *RouterService) keyForPathAndMethod(path, method string) string {
	return fmt.Sprintf("%s-%s", method, path)
}

func (controller *RESTController) bindHandlerToController(routerService *RouterService, path, method string) {
	key := routerService.keyForPathAndMethod(path, method)
	otherController, foundPrevious := routerService.handlerToControllerMap[key]

	if foundPrevious {
		panic(fmt.Sprintf("A handler is already registered for path '%s' by a different controller '%s'", path, otherController.name))
	}

	routerService.handlerToControllerMap[key] = controller
}

func (routerService *RouterService) bindHandlerRateLimiter(path, method string, limiter ratelimit.RateLimiter, message string) {
	if limiter == nil {
		return
	}

	key := routerService.keyForPathAndMethod(path, method)
	if _, foundPrevious := routerService.rateLimitOverrides[key]; foundPrevious {
		panic(fmt.Sprintf("A rate limiter is already registered for path '%s'", path))
	}

	routerService.rateLimitOverrides[key] = limiter
	if message != "" {
		routerService.rateLimitMessages[key] = message
	}
}

func createHandler(handler HandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(result.StatusCode, result.ToJSON())
	}
}

func createPageHandler(handler PageHandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil {
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Internal server error"))
			return
		}

		c.Data(result.StatusCode, "text/html; charset=utf-8", result.Body)
	}
}

func NewRESTController(name, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	mountPoint = strings.ReplaceAll("/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: mountPoint,
		prepare:    prepare,
	}
}

// RateLimitOption attaches a per-handler limiter; Message is the fixed
// rejection body returned with the 429.
type RateLimitOption struct {
	Limiter ratelimit.RateLimiter
	Message string
}

func (routerService *RouterService) AddPostHandler(
	controller *RESTController,
	limit *RateLimitOption,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.registerHandler(controller, limit, "POST", path, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddGetHandler(
	controller *RESTController,
	limit *RateLimitOption,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.registerHandler(controller, limit, "GET", path, createHandler(handler), middlewares)
}

// AddGetPageHandler registers a GET route that renders HTML instead of the
// JSON envelope.
func (routerService *RouterService) AddGetPageHandler(
	controller *RESTController,
	limit *RateLimitOption,
	path string,
	handler PageHandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.registerHandler(controller, limit, "GET", path, createPageHandler(handler), middlewares)
}

func (routerService *RouterService) registerHandler(
	controller *RESTController,
	limit *RateLimitOption,
	method, path string,
	handler MiddlewareFunc,
	middlewares []MiddlewareFunc,
) {
	controller.handlerCount++
	mountPoint := normalizePath(controller, path)
	controller.bindHandlerToController(routerService, mountPoint, method)

	if limit != nil {
		routerService.bindHandlerRateLimiter(mountPoint, method, limit.Limiter, limit.Message)
	}

	routerService.engine.Handle(method, mountPoint, append(middlewares, handler)...)
	routerService.logger.Debug("Handler registered", "method", method, "path", mountPoint)
}
