package serviceregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
)

var identityResolverConfigSchema = compileSchema("identity-resolver.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"baseUrl": {"type": "string", "minLength": 1, "format": "uri"},
		"apiKey": {"type": "string", "minLength": 1},
		"namespace": {"type": "string", "minLength": 1},
		"linkRegisterPath": {"type": "string"}
	},
	"required": ["baseUrl", "apiKey", "namespace"],
	"additionalProperties": false
}`)

type identityResolverConfig struct {
	BaseUrl          string `json:"baseUrl"`
	ApiKey           string `json:"apiKey"`
	Namespace        string `json:"namespace"`
	LinkRegisterPath string `json:"linkRegisterPath"`
}

// identityResolverAdapter is a thin client against an identity resolution
// backend. It owns no resolution logic itself.
type identityResolverAdapter struct {
	config identityResolverConfig
	client *http.Client
	meta   Metadata
	logger *logger.Logger
}

func newIdentityResolverAdapter(config map[string]interface{}, meta Metadata) (Adapter, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}

	var cfg identityResolverConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	if cfg.LinkRegisterPath == "" {
		cfg.LinkRegisterPath = "/api/resolver"
	}

	return &identityResolverAdapter{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		meta:   meta,
		logger: meta.Logger,
	}, nil
}

func (a *identityResolverAdapter) PublishLinks(ctx context.Context, req PublishLinksRequest) ([]Link, error) {
	if req.Namespace == "" {
		req.Namespace = a.config.Namespace
	}

	var links []Link
	err := a.do(ctx, http.MethodPost, a.config.LinkRegisterPath, req, &links)
	return links, err
}

func (a *identityResolverAdapter) GetLinkById(ctx context.Context, linkId string) (*Link, error) {
	var link Link
	if err := a.do(ctx, http.MethodGet, a.config.LinkRegisterPath+"/"+linkId, nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (a *identityResolverAdapter) UpdateLink(ctx context.Context, linkId string, link Link) (*Link, error) {
	var updated Link
	if err := a.do(ctx, http.MethodPut, a.config.LinkRegisterPath+"/"+linkId, link, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *identityResolverAdapter) DeleteLink(ctx context.Context, linkId string) error {
	return a.do(ctx, http.MethodDelete, a.config.LinkRegisterPath+"/"+linkId, nil, nil)
}

func (a *identityResolverAdapter) GetResolverDescription(ctx context.Context) (*ResolverDescription, error) {
	var description ResolverDescription
	if err := a.do(ctx, http.MethodGet, "/.well-known/resolver", nil, &description); err != nil {
		return nil, err
	}
	return &description, nil
}

func (a *identityResolverAdapter) GetLinkTypes(ctx context.Context) ([]string, error) {
	var linkTypes []string
	err := a.do(ctx, http.MethodGet, "/api/linkTypes", nil, &linkTypes)
	return linkTypes, err
}

func (a *identityResolverAdapter) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	url := strings.TrimSuffix(a.config.BaseUrl, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.config.ApiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return &ServiceError{
			Code:       "IdrUnreachable",
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("identity resolver request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		a.logger.Warnf("Identity resolver responded %d for %s %s", resp.StatusCode, method, path)
		return &ServiceError{
			Code:       "IdrRequestRejected",
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("identity resolver responded %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
