package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pedidos-taller/internal/httpx"
	ord "github.com/MikeMC777/pedidos-taller/internal/order"
)

// URL prefix for the generated workbooks, mirrored by the excelPath field of
// the save response.
const ordersURLPrefix = "/orders/db"

// POST /api/saveOrder
func saveOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.SaveOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Orden o items inválidos."})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		o, items := req.Model()
		res, err := repo.Save(c.Request.Context(), o, items)
		if err != nil {
			log.Printf("[order] rid=%s save %s: %v", httpx.RID(c), o.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error interno."})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   fmt.Sprintf("Orden %s guardada.", o.ID),
			"excelPath": ordersURLPrefix + "/" + res.File,
			"images":    res.Images,
		})
	}
}

// GET /api/listOrders
func listOrdersHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := repo.ListFiles(c.Request.Context())
		if err != nil {
			log.Printf("[order] rid=%s list: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": files})
	}
}

// GET /api/getOrder/:id
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		items, err := repo.GetItems(c.Request.Context(), id)
		if errors.Is(err, ord.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Orden no encontrada"})
			return
		}
		if err != nil {
			log.Printf("[order] rid=%s get %s: %v", httpx.RID(c), id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		base := requestBaseURL(c)
		for i := range items {
			if strings.HasPrefix(items[i].LinkImg, "/") {
				items[i].LinkImg = base + items[i].LinkImg
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
	}
}

// POST /api/updateOrderStatus
func updateOrderStatusHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "orderId y status requeridos"})
			return
		}
		id := string(req.OrderID)
		if err := repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Orden no encontrada"})
				return
			}
			log.Printf("[order] rid=%s update %s: %v", httpx.RID(c), id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Orden %s actualizada a %s", id, req.Status),
		})
	}
}

// requestBaseURL rebuilds the originating scheme://host for rewriting
// root-relative image links to absolute ones.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + c.Request.Host
}
