package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var client = &http.Client{Timeout: 20 * time.Second}

// PostJSON posts body as JSON and decodes the response into resp (skipped
// when resp is nil).
func PostJSON(ctx context.Context, url string, body any, resp any) error {
	return PostJSONWithAuth(ctx, url, "", body, resp)
}

// PostJSONWithAuth is PostJSON with a bearer token attached.
func PostJSONWithAuth(ctx context.Context, url, token string, body any, resp any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %d", r.StatusCode)
	}
	if resp != nil {
		return json.NewDecoder(r.Body).Decode(resp)
	}
	return nil
}
