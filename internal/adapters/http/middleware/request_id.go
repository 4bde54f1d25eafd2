package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader はリクエスト ID を伝搬するヘッダ名です。
const RequestIDHeader = "X-Request-Id"

// RequestIDKey はコンテキストに格納されるリクエスト ID のキーです。
const RequestIDKey = "requestId"

// RequestID はリクエストごとに一意な ID を割り当てるミドルウェアです。
// クライアントがヘッダで ID を持ち込んだ場合はそれを引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
