package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vodeneev/betbrief/internal/enricher/enricher"
)

// Telegram rejects messages longer than 4096 characters.
const maxMessageRunes = 4000

const (
	helpText = "⚽ Football assistant\n\n" +
		"Ask about matches in plain words, for example:\n" +
		"• Arsenal vs Chelsea\n" +
		"• premier league today\n" +
		"• what's on tomorrow\n" +
		"• best bet today\n\n" +
		"Commands:\n" +
		"/live - matches in play\n" +
		"/today - fixtures today\n" +
		"/tomorrow - fixtures tomorrow\n" +
		"/help - this message"

	notFoundText    = "I could not find football data for that. Try a team or league name, e.g. \"Arsenal vs Chelsea\" or \"serie a today\"."
	accessDenied    = "Access denied. You are not authorized to use this bot."
	unknownCommand  = "Unknown command. Use /help to see available commands."
	chatFailureText = "The assistant is unavailable right now, here is the raw data:\n\n"
)

// commandMessages maps bot commands onto free-text queries the classifier understands.
var commandMessages = map[string]string{
	"/live":     "live matches",
	"/today":    "matches today",
	"/tomorrow": "matches tomorrow",
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type answerer interface {
	Configured() bool
	Answer(ctx context.Context, brief, userText string) (string, error)
}

type enrichFunc func(ctx context.Context, message string) enricher.Result

type bot struct {
	api     sender
	enrich  enrichFunc
	chat    answerer
	allowed map[int64]bool
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func newBot(api sender, enrich enrichFunc, chat answerer, allowedChats []int64, logger *slog.Logger) *bot {
	if logger == nil {
		logger = slog.Default()
	}
	b := &bot{api: api, enrich: enrich, chat: chat, logger: logger}
	if len(allowedChats) > 0 {
		b.allowed = make(map[int64]bool, len(allowedChats))
		for _, id := range allowedChats {
			b.allowed[id] = true
		}
	}
	return b
}

// dispatch handles message in its own goroutine so one slow lookup does not
// block the update loop.
func (b *bot) dispatch(ctx context.Context, message *tgbotapi.Message) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.handleMessage(ctx, message)
	}()
}

func (b *bot) wait() { b.wg.Wait() }

func (b *bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if b.allowed != nil && !b.allowed[chatID] {
		b.logger.Warn("Rejected message from chat outside allow-list", "chat_id", chatID)
		b.send(chatID, accessDenied)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	if message.IsCommand() {
		command := "/" + strings.ToLower(message.Command())
		switch command {
		case "/start", "/help":
			b.send(chatID, helpText)
			return
		}
		query, ok := commandMessages[command]
		if !ok {
			b.send(chatID, unknownCommand)
			return
		}
		text = query
	}

	if _, err := b.api.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Debug("Failed to send typing action", "chat_id", chatID, "error", err)
	}
	b.reply(ctx, chatID, text)
}

func (b *bot) reply(ctx context.Context, chatID int64, text string) {
	res := b.enrich(ctx, text)
	b.logger.Info("Handled message", "chat_id", chatID, "intent", res.Intent.Kind, "found", res.Found)

	if b.chat == nil || !b.chat.Configured() {
		if !res.Found {
			b.send(chatID, notFoundText)
			return
		}
		b.send(chatID, res.Text)
		return
	}

	answer, err := b.chat.Answer(ctx, res.Text, text)
	if err != nil {
		b.logger.Error("Chat completion failed", "chat_id", chatID, "error", err)
		if res.Found {
			b.send(chatID, chatFailureText+res.Text)
		} else {
			b.send(chatID, notFoundText)
		}
		return
	}
	b.send(chatID, answer)
}

func (b *bot) send(chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageRunes) {
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			b.logger.Error("Failed to send message", "chat_id", chatID, "error", err)
			return
		}
	}
}

// splitMessage cuts text into parts of at most limit runes, preferring line
// boundaries.
func splitMessage(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var parts []string
	var cur []rune
	flush := func() {
		if s := strings.TrimRight(string(cur), "\n"); s != "" {
			parts = append(parts, s)
		}
		cur = cur[:0]
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		r := []rune(line)
		if len(cur)+len(r) <= limit {
			cur = append(cur, r...)
			continue
		}
		flush()
		// a single line longer than the limit is hard-wrapped
		for len(r) > limit {
			parts = append(parts, string(r[:limit]))
			r = r[limit:]
		}
		cur = append(cur, r...)
	}
	flush()
	return parts
}
