package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxAdminEmail = "admin_email"

// AdminEmail extracts the authenticated admin's email from the Gin context.
// This is set by RequireAdmin.
func AdminEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminEmail))
}
