package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"excuse-agency/api/internal/config"
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

	bot, err := tgbotapi.NewBotAPI(cfg.MustTelegram())
	if err != nil {
		log.Fatal("telegram init failed", zap.Error(err))
	}
	bot.Debug = false

	fonts := render.NewFontSource(cfg.FontURL, cfg.FontCSSURL)
	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	rep := report.New(cfg.ReportURL, log)
	svc := permit.NewService(eng, fonts, render.Certificate, permit.NewSelector(nil), rep, log)

	log.Info("excuse-agency bot started", zap.String("account", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range bot.GetUpdatesChan(u) {
		handleUpdate(bot, svc, log, upd)
	}
}

func handleUpdate(bot *tgbotapi.BotAPI, svc *permit.Service, log *zap.Logger, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		switch upd.Message.Command() {
		case "start":
			send(bot, cid, "サボりたい理由を送ってください。許可証を発行します。（50文字以内）")
		case "health":
			send(bot, cid, "✅ OK")
		default:
			send(bot, cid, "不明なコマンドです")
		}
		return
	}

	if upd.Message.Text == "" {
		return
	}

	send(bot, cid, "申請を受理しました。審査中です…")

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	svg, err := svc.Generate(ctx, upd.Message.Text)
	if err != nil {
		switch {
		case errors.Is(err, permit.ErrEmptyReason):
			send(bot, cid, "申請理由が空です。")
		case errors.Is(err, permit.ErrReasonTooLong):
			send(bot, cid, "申請理由は50文字以内でお願いします。")
		default:
			log.Error("bot generate failed", zap.Int64("chat", cid), zap.Error(err))
			send(bot, cid, "窓口が混み合っています。しばらくしてからもう一度どうぞ。")
		}
		return
	}

	doc := tgbotapi.NewDocument(cid, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("permit-%d.svg", time.Now().Unix()),
		Bytes: svg,
	})
	doc.Caption = "認可されました"
	if _, err := bot.Send(doc); err != nil {
		log.Error("bot send failed", zap.Int64("chat", cid), zap.Error(err))
	}
}

func send(bot *tgbotapi.BotAPI, chatID int64, text string) {
	_, _ = bot.Send(tgbotapi.NewMessage(chatID, text))
}
