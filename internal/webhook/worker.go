package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_portal/internal/config"
	"github.com/sirupsen/logrus"
)

const SignatureHeader = "X-Webhook-Signature"

// Worker забирает события из очереди и доставляет их на вебхук
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	done        chan struct{}
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start запускает горутину обработки очереди до отмены ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}
			// BRPOP с таймаутом, чтобы регулярно проверять ctx
			result, err := w.redisClient.BRPop(ctx, time.Second, reportQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop report event from Redis")
				sleepContext(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event ReportEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal report event from Redis")
				continue
			}

			_ = w.Deliver(ctx, event, []byte(payload))
		}
	}()
}

// Done закрывается после остановки воркера
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Deliver отправляет событие с повторами и экспоненциальной задержкой
func (w *Worker) Deliver(ctx context.Context, event ReportEvent, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":  event.ID,
		"reference": event.Reference,
	})
	log.Debug("Processing report event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		lastErr = w.send(ctx, payload)
		if lastErr == nil {
			log.Info("Webhook delivered successfully.")
			return nil
		}
		if i == maxRetries-1 {
			break
		}
		log.WithError(lastErr).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if !sleepContext(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	log.WithError(lastErr).Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", maxRetries, lastErr)
}

func (w *Worker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// Sign возвращает HMAC-SHA256 подпись данных в hex
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
