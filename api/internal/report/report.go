package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type payload struct {
	UserMessage string `json:"userMessage"`
	AIResponse  string `json:"aiResponse"`
}

// Reporter posts usage records to an external endpoint. Failures are logged
// at debug and otherwise swallowed; nothing here may affect a response.
type Reporter struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func New(endpoint string, log *zap.Logger) *Reporter {
	return &Reporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Send fires a detached best-effort report. It returns immediately.
func (r *Reporter) Send(userMessage, aiResponse string) {
	if r == nil || r.endpoint == "" {
		return
	}
	go r.post(payload{UserMessage: userMessage, AIResponse: aiResponse})
}

func (r *Reporter) post(p payload) {
	body, err := json.Marshal(p)
	if err != nil {
		return
	}
	resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		r.log.Debug("usage report failed", zap.Error(err))
		return
	}
	_ = resp.Body.Close()
}
