package telegram_bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"kisan-backend/internal/chat"
	"kisan-backend/internal/config"
	"kisan-backend/internal/mandi"
)

func newTestBot() *Bot {
	logger := zap.NewNop()
	return newBot(chat.NewService(nil, logger), mandi.NewClient(mandi.Config{}, logger), "hi", logger)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		cmd  string
		args []string
	}{
		{"/price wheat Punjab", "price", []string{"wheat", "Punjab"}},
		{"/Price@KisanBot onion", "price", []string{"onion"}},
		{"  /help  ", "help", []string{}},
		{"how do I treat blight?", "", nil},
		{"", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, args := parseCommand(tt.text)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestNewBot_Disabled(t *testing.T) {
	cfg := &config.Config{}
	bot, err := NewBot(cfg, nil, nil, zap.NewNop())
	assert.NoError(t, err)
	assert.Nil(t, bot)
	assert.NoError(t, bot.Start(context.Background()))
}

func TestReply_LanguagePerChat(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	assert.Equal(t, "hi", b.language(1))
	assert.Equal(t, "Language set to en", b.reply(ctx, 1, "/lang EN"))
	assert.Equal(t, "en", b.language(1))
	assert.Equal(t, "hi", b.language(2))

	assert.Contains(t, b.reply(ctx, 1, "/lang fr"), "Supported:")
	assert.Equal(t, "en", b.language(1))
}

func TestReply_Commands(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()
	b.setLanguage(7, "en")

	assert.Contains(t, b.reply(ctx, 7, "/start"), "/price")
	assert.Contains(t, b.reply(ctx, 7, "/unknown"), "Unknown command")

	price := b.reply(ctx, 7, "/price wheat Madhya Pradesh")
	assert.Contains(t, price, "Main Mandi")
	assert.Contains(t, price, "₹")
	assert.Contains(t, b.reply(ctx, 7, "/price"), "Usage")

	assert.Contains(t, b.reply(ctx, 7, "/advice onion abc"), "must be a number")
	assert.NotEmpty(t, b.reply(ctx, 7, "/advice onion 22.5"))

	tasksReply := b.reply(ctx, 7, "/tasks")
	assert.Contains(t, tasksReply, "Check for early blight symptoms")
}

func TestReply_FreeTextUsesChat(t *testing.T) {
	b := newTestBot()
	reply := b.reply(context.Background(), 3, "मेरी फसल में कीड़े हैं")
	assert.NotEmpty(t, reply)
	assert.Contains(t, reply, "1. ")
}
