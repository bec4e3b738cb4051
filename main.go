package main

import (
	"fmt"
	"os"

	gmw "github.com/Laisky/gin-middlewares/v6"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studioforge/relay/common"
	"github.com/studioforge/relay/common/client"
	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/common/logger"
	"github.com/studioforge/relay/middleware"
	"github.com/studioforge/relay/router"
)

func main() {
	common.Init()

	if *common.PrintVersion {
		fmt.Println(common.Version)
		os.Exit(0)
	}

	logger.Logger.Info("studio relay started", zap.String("version", common.Version))

	if config.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	client.Init()

	logLevel := glog.LevelInfo
	if config.DebugEnabled {
		logLevel = glog.LevelDebug
	}

	server := gin.New()
	server.RedirectTrailingSlash = false
	server.Use(
		middleware.RelayPanicRecover(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(logLevel.String()),
			gmw.WithLogger(logger.Logger.Named("gin")),
		),
	)
	server.Use(middleware.RequestId())
	server.Use(middleware.CORS())

	if config.EnablePrometheusMetrics {
		server.Use(middleware.PrometheusMiddleware())
		server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.SetRouter(server)

	port := config.ServerPort
	if port == "" {
		port = fmt.Sprintf("%d", *common.Port)
	}
	logger.Logger.Info("server started", zap.String("address", "http://localhost:"+port))
	if err := server.Run(":" + port); err != nil {
		logger.Logger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
