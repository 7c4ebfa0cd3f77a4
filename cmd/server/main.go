package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/handler"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/invoice"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/logger"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/middleware"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/shopify"
	"github.com/kunallagu/shopify-gst-invoice-app-2/pkg/mailer"
	"github.com/kunallagu/shopify-gst-invoice-app-2/pkg/pdf"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Wire Components
	client := shopify.NewClient(cfg.Shopify)
	calc := invoice.NewCalculator(cfg.Tax)

	renderer, err := invoice.NewRenderer(cfg.Company)
	if err != nil {
		logger.Error("failed to build renderer", "err", err)
		os.Exit(1)
	}

	converter := pdf.NewConverter()
	defer converter.Close()

	m := mailer.NewMailer(cfg.SMTP)

	authHandler := handler.NewAuthHandler(cfg, client)
	invoiceHandler := handler.NewInvoiceHandler(client, calc, renderer, converter, m)

	// 3. Initialize Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r.Use(sessions.Sessions("shopify_session", store))

	// 4. Setup Routes
	r.GET("/", handler.Health)
	r.Static("/public", "./public")

	r.GET("/install", authHandler.Install)
	r.GET("/callback", authHandler.Callback)

	authRoutes := r.Group("/auth")
	{
		authRoutes.GET("/install", authHandler.Install)
		authRoutes.GET("/callback", authHandler.Callback)
	}

	invoiceRoutes := r.Group("/invoice")
	{
		invoiceRoutes.GET("/:orderId", invoiceHandler.Download)
		invoiceRoutes.GET("/html/:orderId", invoiceHandler.PreviewHTML)
		invoiceRoutes.POST("/email/:orderId", invoiceHandler.Email)
		invoiceRoutes.POST("/generate/:orderId", invoiceHandler.Generate)
	}

	addr := ":" + cfg.Server.Port
	logger.Info("starting server", "addr", addr, "shop", cfg.Shopify.Domain)
	if err := r.Run(addr); err != nil {
		logger.Error("server crashed", "err", err)
		os.Exit(1)
	}
}
