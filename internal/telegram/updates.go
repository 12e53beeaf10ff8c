// internal/telegram/updates.go
package telegram

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// UpdateHandler обрабатывает одно обновление. Ошибка обработчика логируется
// и не останавливает цикл.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update Update) error
}

// pollRetryDelay - пауза перед повтором после ошибки getUpdates
const pollRetryDelay = 3 * time.Second

// Run запускает цикл long polling до отмены контекста.
func (b *Bot) Run(ctx context.Context, pollTimeout time.Duration, handler UpdateHandler) error {
	var offset int64

	b.log.Info("🤖 Telegram polling started", zap.Duration("poll_timeout", pollTimeout))

	for {
		select {
		case <-ctx.Done():
			b.log.Info("🛑 Telegram polling stopped")
			return ctx.Err()
		default:
		}

		updates, err := b.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				b.log.Info("🛑 Telegram polling stopped")
				return ctx.Err()
			}
			b.log.Warn("getUpdates failed", zap.Error(err))

			select {
			case <-time.After(pollRetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if err := handler.HandleUpdate(ctx, update); err != nil {
				b.log.Error("update handler failed",
					zap.Int64("update_id", update.UpdateID),
					zap.Error(err))
			}
		}
	}
}
