package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"excuse-agency/api/internal/config"
	"excuse-agency/api/internal/handle"
	"excuse-agency/api/internal/llm/gemini"
	"excuse-agency/api/internal/logger"
	"excuse-agency/api/internal/permit"
	"excuse-agency/api/internal/render"
	"excuse-agency/api/internal/report"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	fonts := render.NewFontSource(cfg.FontURL, cfg.FontCSSURL)
	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	rep := report.New(cfg.ReportURL, log)

	svc := permit.NewService(eng, fonts, render.Certificate, permit.NewSelector(nil), rep, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	h := handle.New(cfg, svc, fonts, log)
	h.Routes(r)

	addr := ":" + cfg.Port
	log.Info("excuse-agency listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
