package telegram_bot

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"kisan-backend/internal/chat"
	"kisan-backend/internal/config"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/mandi"
	"kisan-backend/internal/models"
	"kisan-backend/internal/tasks"
)

// Bot answers farmers over Telegram using the same services as the HTTP API.
type Bot struct {
	api    *tgbotapi.BotAPI
	chat   *chat.Service
	mandi  *mandi.Client
	logger *zap.Logger

	defaultLang string
	mu          sync.Mutex
	langs       map[int64]string // chat id -> language
}

// NewBot returns nil, nil when the bot is disabled.
func NewBot(cfg *config.Config, chatService *chat.Service, mandiClient *mandi.Client, logger *zap.Logger) (*Bot, error) {
	if !cfg.Telegram.Enabled || cfg.Telegram.Token == "" {
		logger.Info("Telegram bot is disabled (telegram.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	b := newBot(chatService, mandiClient, cfg.App.DefaultLanguage, logger)
	b.api = botAPI
	return b, nil
}

func newBot(chatService *chat.Service, mandiClient *mandi.Client, defaultLang string, logger *zap.Logger) *Bot {
	return &Bot{
		chat:        chatService,
		mandi:       mandiClient,
		logger:      logger,
		defaultLang: locale.Normalize(defaultLang),
		langs:       make(map[int64]string),
	}
}

// Start begins listening for updates from Telegram
func (b *Bot) Start(ctx context.Context) error {
	if b == nil {
		return nil
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Telegram bot started, waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Telegram bot shutting down...")
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			reply := b.reply(ctx, update.Message.Chat.ID, update.Message.Text)
			b.sendMessage(update.Message.Chat.ID, reply)
		}
	}
}

// reply computes the answer to one incoming message.
func (b *Bot) reply(ctx context.Context, chatID int64, text string) string {
	lang := b.language(chatID)

	cmd, args := parseCommand(text)
	switch cmd {
	case "":
		res := b.chat.Respond(ctx, models.ChatRequest{
			Message:   text,
			SessionID: "telegram-" + strconv.FormatInt(chatID, 10),
			Language:  lang,
		})
		return formatChat(res.Value)
	case "start", "help":
		return helpText
	case "lang":
		if len(args) != 1 || !slices.Contains(locale.Supported, strings.ToLower(args[0])) {
			return "Usage: /lang <code>\nSupported: " + strings.Join(locale.Supported, ", ")
		}
		b.setLanguage(chatID, strings.ToLower(args[0]))
		return "Language set to " + strings.ToLower(args[0])
	case "price":
		if len(args) == 0 {
			return "Usage: /price <crop> [state]"
		}
		region := "India"
		if len(args) > 1 {
			region = strings.Join(args[1:], " ")
		}
		res := b.mandi.GetMarketPrices(ctx, models.MarketPriceRequest{CropName: args[0], Region: region, Language: lang})
		return formatPrice(res.Value)
	case "advice":
		if len(args) != 2 {
			return "Usage: /advice <crop> <price per kg>"
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			return "Price must be a number, e.g. /advice onion 22.5"
		}
		return formatChat(b.chat.MarketAdvice(ctx, args[0], price, lang).Value)
	case "tasks":
		crop := tasks.DefaultCrop
		if len(args) > 0 {
			crop = args[0]
		}
		return formatTasks(tasks.Templates(crop, lang), lang)
	default:
		return "Unknown command. Use /help."
	}
}

func (b *Bot) language(chatID int64) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if lang, ok := b.langs[chatID]; ok {
		return lang
	}
	return b.defaultLang
}

func (b *Bot) setLanguage(chatID int64, lang string) {
	b.mu.Lock()
	b.langs[chatID] = lang
	b.mu.Unlock()
}

// parseCommand splits "/price@KisanBot wheat Punjab" into ("price",
// ["wheat", "Punjab"]). Plain text yields an empty command.
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), fields[1:]
}

const helpText = "🌾 Kisan AI\n\n" +
	"Ask any farming question in plain text.\n\n" +
	"/price <crop> [state] - mandi prices and sell advice\n" +
	"/advice <crop> <price> - should I sell at this price?\n" +
	"/tasks [crop] - today's tasks for a crop\n" +
	"/lang <code> - reply language (hi, en, kn, ta, te, mr, bn, gu)"

func formatChat(resp models.ChatResponse) string {
	var sb strings.Builder
	sb.WriteString(resp.Message)
	for i, step := range resp.ActionableSteps {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, step)
	}
	return sb.String()
}

func formatPrice(a models.MarketAnalysis) string {
	p := a.CurrentPrice
	name := a.CropName
	if p.CropNameHindi != "" {
		name += " (" + p.CropNameHindi + ")"
	}
	reason := a.Advice.Reason
	if a.Advice.ReasonLocal != "" {
		reason = a.Advice.ReasonLocal
	} else if a.Advice.ReasonHindi != "" {
		reason = a.Advice.ReasonHindi
	}
	return fmt.Sprintf("%s, %s\n₹%.2f/%s (min ₹%.2f, max ₹%.2f)\n%s: %s",
		name, p.MarketName, p.AvgPrice, p.Unit, p.MinPrice, p.MaxPrice,
		strings.ToUpper(string(a.Advice.Action)), reason)
}

func formatTasks(defs []tasks.Definition, lang string) string {
	var sb strings.Builder
	for i, d := range defs {
		title := d.Title
		switch {
		case d.TitleLocal != "":
			title = d.TitleLocal
		case lang != locale.English && d.TitleHindi != "":
			title = d.TitleHindi
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s %s (%s)", d.DueTime, title, d.Priority)
	}
	return sb.String()
}

// sendMessage is a helper to send a simple text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
