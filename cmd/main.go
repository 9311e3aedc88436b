package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"partner-commission-api/internal/config"
	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/handler"
	"partner-commission-api/internal/idgen"
	"partner-commission-api/internal/middleware"
	"partner-commission-api/internal/mq"
	"partner-commission-api/internal/service"
	"partner-commission-api/internal/shard"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitLedgerDB()
	dal.InitRedis()
	dal.InitRabbitMQ()
	shard.InitShardEngines()

	// idgen
	idgen.Init(1)

	// 异步批次入口
	mq.StartBatchConsumer(service.NewBatchService().ProcessBatch)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// 设置可信代理 IP（如本地或内网）
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover(), middleware.Logger())

	v1 := r.Group("/api/v1")
	{
		ph := handler.NewPartnerHandler()
		v1.POST("/partners/root", middleware.AuthHMAC(), ph.CreateRoot)
		v1.POST("/partners", middleware.AuthHMAC(), ph.Add)
		v1.GET("/partners", ph.List)
		v1.GET("/partners/:id", ph.Get)
		v1.GET("/partners/:id/ancestors", ph.Ancestors)
		v1.PUT("/partners/:id/status", middleware.AuthHMAC(), ph.UpdateStatus)
		v1.POST("/partners/:id/metrics", middleware.AuthHMAC(), ph.ReportMetrics)

		ch := handler.NewCommissionHandler()
		v1.POST("/commissions/batch", middleware.AuthHMAC(), ch.ProcessBatch)
		v1.GET("/commissions/distributions/:txId", ch.GetDistribution)
		v1.GET("/commissions/partners/:id/calculations", ch.ListCalculations)
		v1.GET("/commissions/partners/:id/earnings", ch.GetEarnings)
		v1.PUT("/commissions/calculations/:calcId/status", middleware.AuthHMAC(), ch.UpdateCalcStatus)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
