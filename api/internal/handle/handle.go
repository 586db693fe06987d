package handle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"excuse-agency/api/internal/config"
	"excuse-agency/api/internal/permit"
	"excuse-agency/api/internal/render"
)

const generateTimeout = 60 * time.Second

type Handle struct {
	cfg   *config.Config
	svc   *permit.Service
	fonts *render.FontSource
	proxy *http.Client
	log   *zap.Logger
}

func New(cfg *config.Config, svc *permit.Service, fonts *render.FontSource, log *zap.Logger) *Handle {
	return &Handle{
		cfg:   cfg,
		svc:   svc,
		fonts: fonts,
		proxy: &http.Client{Timeout: 20 * time.Second},
		log:   log,
	}
}

func (h *Handle) Routes(r *gin.Engine) {
	r.Use(RequestID(h.log))

	r.GET("/", h.Index)
	r.GET("/healthz", h.Healthz)
	r.GET("/og-image", h.OGImage)
	r.GET("/image/:filename", h.Image)
	r.POST("/generate", h.Generate)
}

func (h *Handle) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

type generateReq struct {
	Reason string `json:"reason"`
}

// Generate runs an application through the pipeline and answers with the
// rendered certificate. Invalid input is the caller's fault; everything else
// that surfaces here is ours.
func (h *Handle) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	svg, err := h.svc.Generate(ctx, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, permit.ErrEmptyReason):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "申請理由を入力してください"})
		case errors.Is(err, permit.ErrReasonTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "申請理由は50文字以内で入力してください"})
		case errors.Is(err, permit.ErrMissingAPIKey):
			h.log.Error("generate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "service is not configured"})
		default:
			h.log.Error("generate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// OGImage serves the static social-preview card.
func (h *Handle) OGImage(c *gin.Context) {
	font, err := h.fonts.Fetch(c.Request.Context())
	if err != nil {
		h.log.Error("og-image font fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", render.OGImage(font))
}

// Image proxies a repository asset so the page never exposes the token.
func (h *Handle) Image(c *gin.Context) {
	if h.cfg.GitHubUser == "" || h.cfg.GitHubRepo == "" || h.cfg.GitHubBranch == "" || h.cfg.GitHubToken == "" {
		h.log.Error("image proxy env is missing")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "configuration error"})
		return
	}

	url := fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s",
		h.cfg.GitHubUser, h.cfg.GitHubRepo, h.cfg.GitHubBranch, c.Param("filename"))

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "gateway error"})
		return
	}
	req.Header.Set("Authorization", "token "+h.cfg.GitHubToken)

	resp, err := h.proxy.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "gateway error"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "asset not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, resp.Body)
}
