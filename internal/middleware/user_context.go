package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"b2fy-web/internal/api"
	"b2fy-web/internal/models"
)

const (
	// TokenSessionKey is the single piece of durable client state besides the
	// two preference cookies.
	TokenSessionKey = "token"

	userContextKey = "CurrentUser"
)

// InjectUser resolves the stored bearer token into a session user on every
// request. An invalid or expired token is cleared and the request proceeds
// anonymous; this is the only automatic recovery path.
func InjectUser(client *api.Client, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		token, ok := sess.Get(TokenSessionKey).(string)
		if !ok || token == "" {
			c.Next()
			return
		}

		user, err := client.Me(c.Request.Context(), token)
		if err != nil {
			log.Debug().Err(err).Msg("stored token rejected, clearing session")
			sess.Delete(TokenSessionKey)
			_ = sess.Save()
			c.Next()
			return
		}

		c.Set(userContextKey, models.SessionUser{
			Token:         token,
			ID:            user.ID,
			Email:         user.Email,
			Nome:          user.Nome,
			Tipo:          user.Tipo,
			FotoPerfilURL: user.FotoPerfilURL,
			Nichos:        user.Nichos,
		})
		c.Next()
	}
}

// CurrentUser returns the session user placed by InjectUser.
func CurrentUser(c *gin.Context) (models.SessionUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.SessionUser{}, false
	}
	user, ok := v.(models.SessionUser)
	return user, ok
}

// SetSessionUser stores the token after login/registro. The session object is
// composed directly from the auth response; no extra profile round trip.
func SetSessionUser(c *gin.Context, res *api.LoginResponse) error {
	sess := sessions.Default(c)
	sess.Set(TokenSessionKey, res.Token)
	if err := sess.Save(); err != nil {
		return err
	}
	c.Set(userContextKey, models.SessionUser{
		Token:         res.Token,
		ID:            res.ID,
		Email:         res.Email,
		Nome:          res.Nome,
		Tipo:          res.Tipo,
		FotoPerfilURL: res.FotoPerfilURL,
		Nichos:        res.Nichos,
	})
	return nil
}

// ClearSession signs the user out synchronously.
func ClearSession(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
}
