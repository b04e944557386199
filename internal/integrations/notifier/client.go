package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент шлюза SMS-уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет клиенту SMS с кодом подтверждения.
// Доставка best-effort: ошибка здесь не должна откатывать бронирование
func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation *BookingConfirmation) error {
	url := fmt.Sprintf("%s/api/v1/notifications/booking-confirmation", c.baseURL)

	body, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal confirmation: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("SendBookingConfirmation: gateway unreachable for phone=%s: %v", confirmation.CustomerPhone, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		c.log.Info("SendBookingConfirmation: confirmation %s queued for phone=%s",
			confirmation.ConfirmationCode, confirmation.CustomerPhone)
		return nil
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: gateway rejected confirmation: %s", ErrInvalidResponse, string(respBody))
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: gateway returned 503", ErrServiceUnavailable)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
