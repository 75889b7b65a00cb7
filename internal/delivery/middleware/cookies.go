package middleware

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// SessionCookies writes and clears the three session cookies.
type SessionCookies struct {
	Secure bool
}

// Set writes the signed token as an HttpOnly cookie plus the two display
// cookies. userId and userName are never trusted for authorization.
func (sc SessionCookies) Set(c echo.Context, token string, userID int64, userName string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieAccessToken,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	sc.setDisplay(c, constants.CookieUserID, strconv.FormatInt(userID, 10), expires)
	sc.setDisplay(c, constants.CookieUserName, userName, expires)
}

// SetUserName refreshes only the display name cookie.
func (sc SessionCookies) SetUserName(c echo.Context, userName string, expires time.Time) {
	sc.setDisplay(c, constants.CookieUserName, userName, expires)
}

// Clear expires all three cookies.
func (sc SessionCookies) Clear(c echo.Context) {
	for _, name := range []string{constants.CookieAccessToken, constants.CookieUserID, constants.CookieUserName} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: name == constants.CookieAccessToken,
			Secure:   sc.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (sc SessionCookies) setDisplay(c echo.Context, name, value string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
