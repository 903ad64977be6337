package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ClientIDHeader selects the client scope explicitly, e.g. from a front-end shell.
	ClientIDHeader = "X-Client-ID"
	// ClientIDCookie keeps the client scope of a browser between page loads.
	ClientIDCookie = "mfe_client_id"

	clientScopeKey    = "clientScope"
	clientCookieMaxAge = 365 * 24 * 60 * 60
)

var validClientScope = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)

// ClientScope resolves the client scope of the request from the X-Client-ID header or the
// mfe_client_id cookie. When neither carries a usable value a new UUID is minted and set as
// the cookie. Requests for paths in skip are passed through untouched.
func ClientScope(skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			for _, p := range skip {
				if ectx.Request().URL.Path == p {
					return next(ectx)
				}
			}

			scope := strings.TrimSpace(ectx.Request().Header.Get(ClientIDHeader))
			if scope == "" {
				if cookie, err := ectx.Cookie(ClientIDCookie); err == nil {
					scope = cookie.Value
				}
			}
			if !validClientScope.MatchString(scope) {
				scope = uuid.NewString()
				ectx.SetCookie(&http.Cookie{
					Name:     ClientIDCookie,
					Value:    scope,
					Path:     "/",
					MaxAge:   clientCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ectx.Set(clientScopeKey, scope)
			return next(ectx)
		}
	}
}

// clientScope returns the scope resolved by the ClientScope middleware.
func clientScope(ectx echo.Context) string {
	scope, _ := ectx.Get(clientScopeKey).(string)
	return scope
}
