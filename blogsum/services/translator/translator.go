package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blogsum/blogsum/utils/logging"

	"go.uber.org/zap"
)

// Failed is the sentinel returned in place of a translation whenever the
// remote call degrades.
const Failed = "[Translation failed]"

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Translator converts English text to Urdu through the public gtx translate
// endpoint. It is total: any failure yields the sentinel, never an error.
type Translator struct {
	endpoint string
	target   string
	client   *http.Client
}

func New(endpoint string) *Translator {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Translator{
		endpoint: endpoint,
		target:   "ur",
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (t *Translator) Translate(ctx context.Context, text string) string {
	defer logging.LogDuration(ctx, "translate_urdu")()

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", t.target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		logging.ErrorLogger.Error("translate request build failed", zap.Error(err))
		return Failed
	}

	resp, err := t.client.Do(req)
	if err != nil {
		logging.ErrorLogger.Error("translate request failed", zap.Error(err))
		return Failed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.ErrorLogger.Error("translate bad status", zap.Int("status", resp.StatusCode))
		return Failed
	}

	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logging.ErrorLogger.Error("translate decode failed", zap.Error(err))
		return Failed
	}

	translated := joinSegments(payload)
	if strings.TrimSpace(translated) == "" {
		return Failed
	}
	return translated
}

// joinSegments flattens the gtx response, a positional array whose first
// element holds [translated, original, ...] segment tuples.
func joinSegments(payload []any) string {
	if len(payload) == 0 {
		return ""
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return ""
	}

	var sb strings.Builder
	for _, seg := range segments {
		tuple, ok := seg.([]any)
		if !ok || len(tuple) == 0 {
			continue
		}
		if text, ok := tuple[0].(string); ok {
			sb.WriteString(text)
		}
	}
	return sb.String()
}
