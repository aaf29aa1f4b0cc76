package handler

import (
	"net/http"

	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理管理员登录：凭据完全匹配时写入会话 Cookie。
// 会话 Cookie 的值就是配置的共享密钥，没有额外的签发流程。
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	if !a.auth.ValidCredentials(payload.Username, payload.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	a.setSessionCookie(c, a.auth.SessionValue(), service.AdminSessionMaxAge)
	respondOK(c, nil)
}

// Logout 清除会话 Cookie。
func (a *API) Logout(c *gin.Context) {
	a.setSessionCookie(c, "", -1)
	respondOK(c, nil)
}

func (a *API) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.AdminSessionCookie, value, maxAge, "/", "", a.cfg.Production(), true)
}

func (a *API) isAuthenticated(c *gin.Context) bool {
	cookie, err := c.Cookie(service.AdminSessionCookie)
	if err != nil {
		return false
	}
	return a.auth.Authenticate(cookie)
}

// RequireAdminAPI 保护管理 API：无有效会话时返回 401 JSON。
// 缺失 Cookie 与错误 Cookie 不作区分。
func (a *API) RequireAdminAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.isAuthenticated(c) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminPage 保护后台页面：无有效会话时重定向到登录页。
func (a *API) RequireAdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.isAuthenticated(c) {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
