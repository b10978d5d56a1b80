package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hamed0406/serviceprobe/internal/domain"
)

type Slack struct {
	Webhook string
	Client  *http.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments,omitempty"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Fields []slackField `json:"fields"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func (s *Slack) RunFailed(ctx context.Context, rec *domain.RunRecord) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}

	payload := slackPayload{
		Text: "🔴 *Probe run FAILED*: " + rec.TestID,
		Attachments: []slackAttachment{{
			Color: "danger",
			Fields: []slackField{
				{Title: "Test", Value: rec.TestID, Short: true},
				{Title: "Path", Value: rec.Path, Short: true},
				{Title: "Result key", Value: rec.ResultKey},
				{Title: "Reason", Value: rec.Reason},
				{Title: "Finished", Value: rec.FinishedAt.Format(time.RFC3339), Short: true},
			},
		}},
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("slack non-2xx")
	}
	return nil
}
