package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/config"
	apperrors "github.com/salonflow/dialog-server-go/internal/errors"
	"github.com/salonflow/dialog-server-go/internal/model"
)

// Detector calls the external language-detection capability. One bounded
// attempt per invocation; a timeout is a failure, never retried synchronously.
type Detector struct {
	baseURL         string
	client          *http.Client
	defaultLanguage string
}

func NewDetector(baseURL string, timeout time.Duration, defaultLanguage string) *Detector {
	return &Detector{
		baseURL:         baseURL,
		client:          &http.Client{Timeout: timeout},
		defaultLanguage: defaultLanguage,
	}
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

func (d *Detector) Detect(ctx context.Context, text string) (model.LanguageDetection, error) {
	var resp detectResponse
	if err := postJSON(ctx, d.client, d.baseURL+"/v1/detect", detectRequest{Text: text}, &resp); err != nil {
		return model.LanguageDetection{}, apperrors.DetectionFailed(err)
	}

	if !isSupported(resp.Language) {
		log.Warn().
			Str("language", resp.Language).
			Msg("detector returned unsupported language, substituting default")
		return model.LanguageDetection{Language: d.defaultLanguage, Confidence: 0}, nil
	}

	return model.LanguageDetection{Language: resp.Language, Confidence: resp.Confidence}, nil
}

func isSupported(code string) bool {
	for _, lang := range config.SupportedLanguages {
		if code == lang {
			return true
		}
	}
	return false
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d after %s", resp.StatusCode, time.Since(start))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
