// internal/telegram/bot.go
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Bot - клиент Telegram Bot API поверх HTTP
type Bot struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
}

// NewBot создает новый клиент Telegram Bot API. apiURL is the API host
// without trailing slash (production: https://api.telegram.org).
func NewBot(apiURL, token string, log *zap.Logger) *Bot {
	return &Bot{
		// Timeout must exceed the getUpdates long-poll window.
		httpClient: &http.Client{Timeout: 90 * time.Second},
		baseURL:    fmt.Sprintf("%s/bot%s/", apiURL, token),
		log:        log,
	}
}

// SendMessage отправляет текстовое сообщение в чат.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithKeyboard(ctx, chatID, text, nil)
}

// SendMessageWithKeyboard отправляет сообщение с inline клавиатурой.
func (b *Bot) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	payload := sendMessagePayload{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
		ReplyMarkup:           keyboard,
	}

	_, err := b.sendRequest(ctx, "sendMessage", payload)
	return err
}

// AnswerCallbackQuery подтверждает нажатие inline кнопки.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	payload := answerCallbackQueryPayload{CallbackQueryID: callbackID}

	_, err := b.sendRequest(ctx, "answerCallbackQuery", payload)
	return err
}

// GetUpdates выполняет один long-poll запрос getUpdates.
func (b *Bot) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	payload := getUpdatesPayload{
		Offset:         offset,
		Timeout:        int(timeout.Seconds()),
		AllowedUpdates: []string{"message", "callback_query"},
	}

	result, err := b.sendRequest(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("parse updates: %w", err)
	}
	return updates, nil
}

// sendRequest - общая функция для запросов к Telegram API. При ответе 429
// ждет retry_after и повторяет запрос один раз.
func (b *Bot) sendRequest(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	return b.doRequest(ctx, method, payload, true)
}

func (b *Bot) doRequest(ctx context.Context, method string, payload interface{}, allowRetry bool) (json.RawMessage, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+method, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var telegramResp struct {
		OK          bool            `json:"ok"`
		Result      json.RawMessage `json:"result"`
		ErrorCode   int             `json:"error_code,omitempty"`
		Description string          `json:"description,omitempty"`
		Parameters  struct {
			RetryAfter int `json:"retry_after"`
		} `json:"parameters"`
	}
	if err := json.Unmarshal(body, &telegramResp); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", method, err)
	}

	if !telegramResp.OK {
		if telegramResp.ErrorCode == 429 && allowRetry {
			retryAfter := 5
			if telegramResp.Parameters.RetryAfter > 0 {
				retryAfter = telegramResp.Parameters.RetryAfter
			}
			b.log.Warn("⚠️ Telegram API rate limit",
				zap.String("method", method),
				zap.Int("retry_after_sec", retryAfter))

			select {
			case <-time.After(time.Duration(retryAfter) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return b.doRequest(ctx, method, payload, false)
		}
		return nil, fmt.Errorf("telegram API error %d: %s", telegramResp.ErrorCode, telegramResp.Description)
	}

	return telegramResp.Result, nil
}
