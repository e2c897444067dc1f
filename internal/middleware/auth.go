package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/canteen-scheduler/internal/config"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
)

const (
	ContextSubjectID = "subjectID"

	// StudentIDHeader identifies the caller when no JWT secret is configured.
	StudentIDHeader = "studentId"
)

// AdminChecker answers whether a subject may use administrative routes.
type AdminChecker interface {
	IsAdmin(ctx context.Context, subjectID string) (bool, error)
}

// SubjectMiddleware resolves the caller. With a JWT secret configured the
// subject is the "sub" claim of an HS256 bearer token; otherwise it is
// the studentId header. A missing identity is not an error here.
func SubjectMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.JWTSecret == "" {
			if id := strings.TrimSpace(c.GetHeader(StudentIDHeader)); id != "" {
				c.Set(ContextSubjectID, id)
			}
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Token has no subject.")
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, sub)
		c.Next()
	}
}

// RequireSubject rejects requests whose caller could not be identified.
func RequireSubject() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SubjectID(c) == "" {
			httperr.Unauthorized(c, "missing_subject", "Caller identity is required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := SubjectID(c)
		if subject == "" {
			httperr.Unauthorized(c, "missing_subject", "Caller identity is required.")
			c.Abort()
			return
		}

		ok, err := checker.IsAdmin(c.Request.Context(), subject)
		if err != nil {
			_ = c.Error(err)
			httperr.Internal(c, "internal_error", "An unexpected error occurred.")
			c.Abort()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
				Code:    "admin_required",
				Message: "Administrator access is required.",
			})
			return
		}

		c.Next()
	}
}

func SubjectID(c *gin.Context) string {
	return c.GetString(ContextSubjectID)
}
