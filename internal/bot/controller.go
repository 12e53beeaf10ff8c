// internal/bot/controller.go
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solana-pair-screener-bot/internal/config"
	"solana-pair-screener-bot/internal/dexscreener"
	"solana-pair-screener-bot/internal/screener"
	"solana-pair-screener-bot/internal/telegram"
)

// callbackPrefix marks preset buttons on the inline keyboard.
const callbackPrefix = "preset:"

// Fetcher - граница Dexscreener, потребляемая контроллером
type Fetcher interface {
	Search(ctx context.Context, query string) ([]dexscreener.Pair, error)
}

// Sender - исходящая поверхность Telegram
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// Controller связывает fetch → filter → render с Telegram. Держит ноль
// состояния между запросами; независимые чаты обслуживаются независимо.
type Controller struct {
	fetcher Fetcher
	sender  Sender
	cfg     *config.Config
	log     *zap.Logger
	now     func() time.Time
}

// NewController создает контроллер бота.
func NewController(fetcher Fetcher, sender Sender, cfg *config.Config, log *zap.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		sender:  sender,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// HandleUpdate реализует telegram.UpdateHandler.
func (c *Controller) HandleUpdate(ctx context.Context, update telegram.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return c.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return c.handleCommand(ctx, update.Message)
	}
	return nil
}

func (c *Controller) handleCommand(ctx context.Context, msg *telegram.Message) error {
	switch command(msg.Text) {
	case "/start":
		return c.sender.SendMessageWithKeyboard(ctx, msg.Chat.ID, welcomeText(), presetKeyboard())
	case "/help":
		return c.sender.SendMessage(ctx, msg.Chat.ID, helpText())
	}
	return nil
}

// handleCallback runs one fetch → filter → render cycle for the pressed
// preset button. Failures stay inside this request's response path.
func (c *Controller) handleCallback(ctx context.Context, query *telegram.CallbackQuery) error {
	if err := c.sender.AnswerCallbackQuery(ctx, query.ID); err != nil {
		c.log.Warn("answerCallbackQuery failed", zap.Error(err))
	}
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID

	presetID, ok := strings.CutPrefix(query.Data, callbackPrefix)
	if !ok {
		return nil
	}
	preset, ok := screener.Lookup(presetID)
	if !ok {
		c.log.Warn("unknown preset in callback", zap.String("data", query.Data))
		return nil
	}

	requestID := uuid.New().String()[:8]
	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("preset", preset.ID),
		zap.Int64("chat_id", chatID))

	log.Info("🔍 scan requested")

	candidates, err := c.fetchAll(ctx)
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		return c.sender.SendMessage(ctx, chatID, msgFetchFailed)
	}

	now := c.now()
	matched := screener.Filter(candidates, preset, now)

	if len(matched) == 0 {
		log.Info("scan complete", zap.Int("candidates", len(candidates)), zap.Int("matched", 0))
		return c.sender.SendMessage(ctx, chatID, msgNoResults)
	}
	if len(matched) > c.cfg.MaxResults {
		matched = matched[:c.cfg.MaxResults]
	}

	for i, pair := range matched {
		if i > 0 {
			// Fixed pacing between successive sends, external rate limits.
			if err := sleepCtx(ctx, c.cfg.SendDelay); err != nil {
				return err
			}
		}
		if err := c.sender.SendMessage(ctx, chatID, screener.Render(pair, now)); err != nil {
			log.Error("send pair message failed",
				zap.String("pair", pair.PairAddress),
				zap.Error(err))
		}
	}

	log.Info("scan complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(matched)))
	return nil
}

// fetchAll fans out one search per configured term and merges the results,
// deduplicating by pair address.
func (c *Controller) fetchAll(ctx context.Context) ([]dexscreener.Pair, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]dexscreener.Pair, len(c.cfg.SearchTerms))

	for i, term := range c.cfg.SearchTerms {
		i, term := i, term
		g.Go(func() error {
			pairs, err := c.fetcher.Search(gctx, term)
			if err != nil {
				return fmt.Errorf("search %q: %w", term, err)
			}
			if len(pairs) > c.cfg.PairsPerTerm {
				pairs = pairs[:c.cfg.PairsPerTerm]
			}
			results[i] = pairs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var merged []dexscreener.Pair
	for _, pairs := range results {
		for _, pair := range pairs {
			if _, dup := seen[pair.PairAddress]; dup {
				continue
			}
			seen[pair.PairAddress] = struct{}{}
			merged = append(merged, pair)
		}
	}
	return merged, nil
}

// command extracts the bot command from message text, dropping the
// @botname suffix of group chats.
func command(text string) string {
	cmd, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return cmd
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
