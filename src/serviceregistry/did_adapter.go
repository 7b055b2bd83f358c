package serviceregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
)

var didWebConfigSchema = compileSchema("did-web.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"baseUrl": {"type": "string", "minLength": 1, "format": "uri"},
		"apiKey": {"type": "string", "minLength": 1},
		"domain": {"type": "string", "minLength": 1}
	},
	"required": ["baseUrl", "apiKey", "domain"],
	"additionalProperties": false
}`)

type didWebConfig struct {
	BaseUrl string `json:"baseUrl"`
	ApiKey  string `json:"apiKey"`
	Domain  string `json:"domain"`
}

// didWebAdapter manages did:web identifiers through an external DID backend.
type didWebAdapter struct {
	config didWebConfig
	client *http.Client
	meta   Metadata
	logger *logger.Logger
}

func newDidWebAdapter(config map[string]interface{}, meta Metadata) (Adapter, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}

	var cfg didWebConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	return &didWebAdapter{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		meta:   meta,
		logger: meta.Logger,
	}, nil
}

func (a *didWebAdapter) Create(ctx context.Context, req CreateDidRequest) (*CreateDidResponse, error) {
	req.Alias = a.NormaliseAlias(req.Alias)
	if req.Method == "" {
		req.Method = "web"
	}

	var created CreateDidResponse
	if err := a.do(ctx, http.MethodPost, "/v1/dids", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *didWebAdapter) Verify(ctx context.Context, did string) (bool, error) {
	var result struct {
		Verified bool `json:"verified"`
	}
	if err := a.do(ctx, http.MethodGet, "/v1/dids/"+did+"/verify", nil, &result); err != nil {
		return false, err
	}
	return result.Verified, nil
}

// NormaliseAlias lowercases the alias and strips characters did:web path
// segments cannot carry.
func (a *didWebAdapter) NormaliseAlias(alias string) string {
	normalised := strings.ToLower(strings.TrimSpace(alias))
	normalised = strings.ReplaceAll(normalised, " ", "-")
	return strings.Trim(normalised, ":/")
}

func (a *didWebAdapter) GetSupportedTypes() []string {
	return []string{"MANAGED", "SELF_MANAGED"}
}

func (a *didWebAdapter) GetSupportedMethods() []string {
	return []string{"web"}
}

func (a *didWebAdapter) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	url := strings.TrimSuffix(a.config.BaseUrl, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.config.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return &ServiceError{
			Code:       "DidServiceUnreachable",
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("did service request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		a.logger.Warnf("DID service responded %d for %s %s", resp.StatusCode, method, path)
		return &ServiceError{
			Code:       "DidServiceRequestRejected",
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("did service responded %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
