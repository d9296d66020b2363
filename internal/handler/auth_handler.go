package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 会话里标记管理员身份的键。
const sessionAdminKey = "admin"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验提交的账号密码并在会话里写入管理员标记。
// 凭据为配置中的单一管理员账号，密码按 bcrypt 哈希比对。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Username and password are required") {
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.adminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		a.log.Error("failed to save session", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout 清空会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.log.Error("failed to clear session", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me 返回当前会话是否具有管理员身份。
func (a *API) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin(c)})
}

// AdminRequired 是保护全部写操作的认证中间件，
// 未通过时直接返回 401 且不产生任何副作用。
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			respondError(c, http.StatusUnauthorized, "Admin required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func isAdmin(c *gin.Context) bool {
	session := sessions.Default(c)
	flag, ok := session.Get(sessionAdminKey).(bool)
	return ok && flag
}
