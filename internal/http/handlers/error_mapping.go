package handlers

import (
	"errors"
	"net/http"

	"github.com/meeple-tees/internal/http/response"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	msg    string
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrTShirtNotFound, status: http.StatusNotFound, msg: "T-shirt not found"},
	{target: service.ErrInsufficientStock, status: http.StatusBadRequest, msg: "Not enough t-shirts in stock"},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, msg: "Order not found"},
	{target: service.ErrInvalidOrderInput, status: http.StatusBadRequest, msg: "Invalid order payload"},
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.msg)
			return
		}
	}
	logger.Errorw("request_failed",
		"path", c.FullPath(),
		"method", c.Request.Method,
		"error", err,
	)
	response.InternalError(c, err.Error())
}
