package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	OrdersDir    string
	ImgDir       string
	ImgURLPrefix string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:         getenv("ORDER_SERVICE_ADDR", ":5000"),
		OrdersDir:    getenv("ORDERS_DIR", "public/orders/db"),
		ImgDir:       getenv("IMG_DIR", "public/orders/imgs"),
		ImgURLPrefix: getenv("IMG_URL_PREFIX", "/orders/imgs"),
	}
	log.Printf("[config] ORDER_SERVICE_ADDR=%s", cfg.Addr)
	log.Printf("[config] ORDERS_DIR=%s", cfg.OrdersDir)
	log.Printf("[config] IMG_DIR=%s", cfg.ImgDir)
	return cfg
}
