// Package client is the HTTP client for the rule-builder API, used by the
// whenctl command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/expr"
	"github.com/eruixma/one-click-campaign/internal/registry"
	"github.com/eruixma/one-click-campaign/internal/rules"
)

// Client is an HTTP client for the rule-builder API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BuildRule submits rule parameters and returns the rendered rule.
func (c *Client) BuildRule(ctx context.Context, params builder.Params) (*builder.RenderedRule, error) {
	var rendered builder.RenderedRule
	if err := c.post(ctx, "/v1/rules", params, &rendered); err != nil {
		return nil, err
	}
	return &rendered, nil
}

// ValidateExpression lints an expression string.
func (c *Client) ValidateExpression(ctx context.Context, expression string) (*expr.ValidationResult, error) {
	var result expr.ValidationResult
	body := map[string]string{"expression": expression}
	if err := c.post(ctx, "/v1/rules/validate", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Comparators lists the supported comparators.
func (c *Client) Comparators(ctx context.Context) ([]rules.ComparatorInfo, error) {
	var result struct {
		Comparators []rules.ComparatorInfo `json:"comparators"`
	}
	if err := c.get(ctx, "/v1/comparators", nil, &result); err != nil {
		return nil, err
	}
	return result.Comparators, nil
}

// Tables lists the analytical record tables.
func (c *Client) Tables(ctx context.Context) ([]registry.Table, error) {
	var result struct {
		Tables []registry.Table `json:"tables"`
	}
	if err := c.get(ctx, "/v1/registry/tables", nil, &result); err != nil {
		return nil, err
	}
	return result.Tables, nil
}

// TableProperties lists the property catalog of one table.
func (c *Client) TableProperties(ctx context.Context, table string) ([]registry.Property, error) {
	var result struct {
		Properties []registry.Property `json:"properties"`
	}
	if err := c.get(ctx, "/v1/registry/tables/"+url.PathEscape(table)+"/properties", nil, &result); err != nil {
		return nil, err
	}
	return result.Properties, nil
}

// Exclusions lists the standard exclusion rules.
func (c *Client) Exclusions(ctx context.Context) ([]registry.ExclusionRule, error) {
	var result struct {
		ExclusionRules []registry.ExclusionRule `json:"exclusion_rules"`
	}
	if err := c.get(ctx, "/v1/registry/exclusions", nil, &result); err != nil {
		return nil, err
	}
	return result.ExclusionRules, nil
}

// Suggest recommends a data source for a free-text property hint.
func (c *Client) Suggest(ctx context.Context, hint string) (*registry.SuggestionResult, error) {
	var result registry.SuggestionResult
	if err := c.get(ctx, "/v1/registry/suggest", url.Values{"q": {hint}}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Template returns the rule template for a campaign type.
func (c *Client) Template(ctx context.Context, campaignType, campaignID string) (*registry.CampaignTemplate, error) {
	var result registry.CampaignTemplate
	query := url.Values{}
	if campaignID != "" {
		query.Set("campaign_id", campaignID)
	}
	if err := c.get(ctx, "/v1/registry/templates/"+url.PathEscape(campaignType), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
