package routes

import (
	"net/http"

	"pix_server/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGeneratePix   = "/gerar-pix"
	PathPaymentNotify = "/webhook-pix"
	PathPaymentStatus = "/status-pix/:txid"
	PathPing          = "/ping"
)

func addPixRoutes(r gin.IRoutes, pix *handlers.PixHandler, webhook *handlers.WebhookHandler) {
	r.POST(PathGeneratePix, pix.CreatePixOrder)
	r.POST(PathPaymentNotify, webhook.HandlePaymentWebhook)
	r.GET(PathPaymentStatus, pix.GetPaymentStatus)
}

func addPingRoutes(r gin.IRoutes) {
	r.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
