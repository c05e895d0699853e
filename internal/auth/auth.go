package auth

import (
	"net/http"
	"time"

	"github.com/iurnickita/saleshub/internal/auth/config"
	"github.com/iurnickita/saleshub/internal/token"
)

type Auth interface {
	Middleware(h http.Handler) http.Handler
	IssueCookie(userCode string) (*http.Cookie, error)
}

const (
	HeaderUserCodeKey = "userCode"
	CookieUserToken   = "saleshubUserToken"
)

type auth struct {
	cfg config.Config
}

func NewAuth(cfg config.Config) Auth {
	return &auth{cfg: cfg}
}

func (a *auth) Middleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// проверка отключена
		if a.cfg.SecretKey == "" {
			h.ServeHTTP(w, r)
			return
		}

		// получение id пользователя
		userCode, err := a.getUserCode(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		// записываем
		r.Header.Set(HeaderUserCodeKey, userCode)

		// передаём управление хендлеру
		h.ServeHTTP(w, r)
	})
}

func (a *auth) getUserCode(r *http.Request) (string, error) {
	// куки пользователя
	tokenCookie, err := r.Cookie(CookieUserToken)
	if err != nil {
		return "", err
	}
	return token.GetUserCode(tokenCookie.Value, a.cfg.SecretKey)
}

// IssueCookie выпускает куки с токеном пользователя на время TokenTTL.
func (a *auth) IssueCookie(userCode string) (*http.Cookie, error) {
	tokenString, err := token.BuildJWTString(userCode, a.cfg.SecretKey, a.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieUserToken,
		Value:    tokenString,
		Path:     "/",
		Expires:  time.Now().Add(a.cfg.TokenTTL),
		HttpOnly: true,
	}, nil
}
