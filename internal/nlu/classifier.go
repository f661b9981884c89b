package nlu

import (
	"context"
	"net/http"
	"time"

	apperrors "github.com/salonflow/dialog-server-go/internal/errors"
	"github.com/salonflow/dialog-server-go/internal/model"
)

// Classifier calls the external intent-classification capability and tags
// the result with a reliability flag. Low confidence is an expected outcome
// and comes back as a value, not an error.
type Classifier struct {
	baseURL   string
	client    *http.Client
	threshold float64
}

func NewClassifier(baseURL string, timeout time.Duration, threshold float64) *Classifier {
	return &Classifier{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
		threshold: threshold,
	}
}

type classifyRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type classifyResponse struct {
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	Alternatives []struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	} `json:"alternatives"`
	Entities struct {
		ServiceID string `json:"serviceId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		StaffID   string `json:"staffId"`
	} `json:"entities"`
}

func (c *Classifier) Classify(ctx context.Context, text, language string) (model.Classification, error) {
	var resp classifyResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/v1/classify", classifyRequest{Text: text, Language: language}, &resp); err != nil {
		return model.Classification{}, apperrors.ClassificationFailed(err)
	}

	result := model.Classification{
		Intent:     model.IntentLabel(resp.Intent),
		Confidence: resp.Confidence,
		Reliable:   resp.Confidence >= c.threshold,
		Entities: model.ExtractedEntities{
			ServiceID: resp.Entities.ServiceID,
			Date:      resp.Entities.Date,
			Time:      resp.Entities.Time,
			StaffID:   resp.Entities.StaffID,
		},
	}
	for _, alt := range resp.Alternatives {
		result.Alternatives = append(result.Alternatives, model.IntentAlternative{
			Intent:     model.IntentLabel(alt.Intent),
			Confidence: alt.Confidence,
		})
	}
	return result, nil
}
