package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Context keys shared by middleware and the response helpers.
const (
	RateLimiterKey = "rateLimiter"
	RequestIDKey   = "requestID"
)

// ApiResponse is the JSON envelope of the /api variants.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta,omitempty"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
	RequestID       string       `json:"request_id,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"20"`
	TotalPages int `json:"total_pages" example:"2"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// getRateFromContext fetches the rate limiter snapshot set by middleware.RateLimiter
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get(RateLimiterKey); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func envelope(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	resp.Rate = getRateFromContext(c)
	resp.RequestID = c.GetString(RequestIDKey)
	if c.Request != nil {
		resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := envelope(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := envelope(c, message)
	resp.Data = data
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := envelope(c, message)
	resp.Error = true
	return resp
}
