package service

import "golang.org/x/crypto/bcrypt"

// AdminSessionCookie 是管理员会话 Cookie 的名称。
const AdminSessionCookie = "admin_session"

// AdminSessionMaxAge 是会话 Cookie 的有效期（秒）。
const AdminSessionMaxAge = 60 * 60 * 8

// AdminAuth 判定请求是否携带管理员身份。
// 会话值本身就是凭据：没有签发、没有过期轮换，也没有多用户。
type AdminAuth struct {
	username     string
	password     string
	passwordHash string
	sessionValue string
}

// NewAdminAuth creates the session gate from configured credentials.
// passwordHash, when non-empty, is a bcrypt hash that replaces the plaintext
// password comparison.
func NewAdminAuth(username, password, passwordHash, sessionValue string) *AdminAuth {
	return &AdminAuth{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		sessionValue: sessionValue,
	}
}

// Authenticate reports whether the cookie value proves admin identity.
// The comparison is exact: case-sensitive, no trimming. A missing cookie is
// indistinguishable from a wrong one.
func (a *AdminAuth) Authenticate(cookieValue string) bool {
	return cookieValue == a.sessionValue
}

// ValidCredentials reports whether the submitted login matches the
// configured admin account.
func (a *AdminAuth) ValidCredentials(username, password string) bool {
	if username != a.username {
		return false
	}
	if a.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	}
	return password == a.password
}

// SessionValue returns the value written into the session cookie on login.
func (a *AdminAuth) SessionValue() string {
	return a.sessionValue
}
