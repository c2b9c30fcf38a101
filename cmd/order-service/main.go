package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pedidos-taller/internal/config"
	"github.com/MikeMC777/pedidos-taller/internal/httpx"
	ord "github.com/MikeMC777/pedidos-taller/internal/order"
	"github.com/MikeMC777/pedidos-taller/internal/preview"
)

func main() {
	cfg := config.Load()

	previews := preview.New(cfg.ImgDir, cfg.ImgURLPrefix)
	repo := ord.NewXLSXRepo(cfg.OrdersDir, previews)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), cors.Default())

	// preview images served read-only as static files
	r.Static(cfg.ImgURLPrefix, cfg.ImgDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/api/saveOrder", saveOrderHandler(repo))
	r.GET("/api/listOrders", listOrdersHandler(repo))
	r.GET("/api/getOrder/:id", getOrderHandler(repo))
	r.POST("/api/updateOrderStatus", updateOrderStatusHandler(repo))

	log.Printf("order-service listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
