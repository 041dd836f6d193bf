package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
)

// NotificacoesDados backs the notification bell. It is polled on demand (page
// load and panel open), never on a timer. List and unread count are two
// independent fetches issued concurrently and awaited jointly.
func (h *Handlers) NotificacoesDados(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "não autenticado"})
		return
	}
	ctx := c.Request.Context()

	var (
		count    int64
		countErr error
		done     = make(chan struct{})
	)
	go func() {
		defer close(done)
		count, countErr = h.api.NotificacoesNaoLidas(ctx, user.Token)
	}()

	notificacoes, err := h.api.Notificacoes(ctx, user.Token)
	<-done

	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}
	if countErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": countErr.Error()})
		return
	}
	if notificacoes == nil {
		notificacoes = []api.NotificacaoResponse{}
	}

	c.JSON(http.StatusOK, gin.H{
		"notificacoes": notificacoes,
		"count":        count,
	})
}

func (h *Handlers) MarcarNotificacaoLida(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "não autenticado"})
		return
	}

	id, valid := paramID(c)
	if !valid {
		return
	}

	if err := h.api.MarcarNotificacaoLida(c.Request.Context(), user.Token, id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
