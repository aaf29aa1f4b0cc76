package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrWebhookNotConfigured 表示留资转发的 webhook 地址未配置。
var ErrWebhookNotConfigured = errors.New("contact webhook URL is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ContactLead 是联系表单提交的一条线索。
type ContactLead struct {
	Name     string
	Brand    string
	Whatsapp string
	Email    string
	Services string
	Message  string
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ContactService forwards contact form leads to an external webhook that
// appends them to a spreadsheet. The webhook expects URL-encoded form data
// and answers with its own {success} flag.
type ContactService struct {
	webhookURL string
	http       httpDoer
}

// NewContactService creates a ContactService targeting the given webhook URL.
func NewContactService(webhookURL string) *ContactService {
	return &ContactService{
		webhookURL: strings.TrimSpace(webhookURL),
		http:       &http.Client{Timeout: 20 * time.Second},
	}
}

// SetHTTPClient 注入自定义 HTTP 客户端，供测试替换。
func (s *ContactService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 20 * time.Second}
		return
	}
	s.http = client
}

// Forward submits the lead and reports the webhook's own success flag.
func (s *ContactService) Forward(ctx context.Context, lead ContactLead) error {
	if s.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	form := url.Values{}
	form.Set("name", lead.Name)
	form.Set("brand", lead.Brand)
	form.Set("whatsapp", lead.Whatsapp)
	form.Set("email", lead.Email)
	form.Set("services", lead.Services)
	form.Set("message", lead.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("forward lead: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read webhook response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	// webhook 返回的不一定是 JSON；解析失败时退回按 HTTP 状态判断。
	var parsed webhookResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if ok {
			return nil
		}
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	if ok && parsed.Success {
		return nil
	}

	detail := strings.TrimSpace(parsed.Error)
	if detail == "" {
		detail = strings.TrimSpace(string(body))
	}
	if detail == "" {
		detail = resp.Status
	}
	return fmt.Errorf("webhook rejected lead: %s", detail)
}
