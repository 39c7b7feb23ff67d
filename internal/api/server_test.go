package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eruixma/one-click-campaign/internal/api"
	"github.com/eruixma/one-click-campaign/internal/audit"
	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/expr"
	"github.com/eruixma/one-click-campaign/internal/registry"
	"github.com/eruixma/one-click-campaign/internal/testutil"
)

func TestHealthz(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")
	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/healthz"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestBuildRule(t *testing.T) {
	server, auditor := testutil.NewTestServer(t, "")
	body := `{
		"name": "IsPremierCustomer",
		"applies_to": "HSBC-Data-CAR",
		"description": "Premier segment check",
		"campaign_id": "CMP-42",
		"conditions": {
			"groups": [
				{
					"conditions": [
						{"property": "CUST_SEGMENT", "comparator": "is equal to", "value": "Premier"}
					],
					"operator": "AND"
				}
			],
			"group_operator": "AND"
		}
	}`

	rr := (&testutil.HTTPRequest{Method: "POST", Path: "/v1/rules", Body: body}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var rendered builder.RenderedRule
	if err := json.Unmarshal(rr.Body.Bytes(), &rendered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rendered.Expression != `@equalsIgnoreCase(@trim(CUST_SEGMENT), "Premier")` {
		t.Errorf("Expression = %q", rendered.Expression)
	}
	if rendered.Fingerprint == "" {
		t.Error("fingerprint missing")
	}

	events := auditor.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(events))
	}
	if events[0].Action != audit.ActionBuilt || events[0].Status != audit.StatusSuccess {
		t.Errorf("unexpected audit event: %+v", events[0])
	}
	if events[0].Fingerprint != rendered.Fingerprint {
		t.Errorf("audit fingerprint mismatch: %q vs %q", events[0].Fingerprint, rendered.Fingerprint)
	}
}

func TestBuildRuleMissingFields(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")

	tests := []struct {
		name     string
		body     string
		wantCode api.ErrorCode
	}{
		{"missing name", `{"applies_to": "HSBC-Data-CAR"}`, api.ErrCodeMissingField},
		{"missing applies_to", `{"name": "X"}`, api.ErrCodeMissingField},
		{"blank name", `{"name": "   ", "applies_to": "HSBC-Data-CAR"}`, api.ErrCodeMissingField},
		{"invalid json", `{not json`, api.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := (&testutil.HTTPRequest{Method: "POST", Path: "/v1/rules", Body: tt.body}).Do(t, server.Router())
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
			}
			var resp api.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.RequestID == "" {
				t.Error("error response should carry the request id")
			}
		})
	}
}

func TestBuildRuleAuth(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "secret-key")
	body := `{"name": "X", "applies_to": "HSBC-Data-CAR", "conditions": {"groups": []}}`

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusForbidden},
		{"right token", "Bearer secret-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &testutil.HTTPRequest{Method: "POST", Path: "/v1/rules", Body: body}
			if tt.authHeader != "" {
				req.Headers = map[string]string{"Authorization": tt.authHeader}
			}
			rr := req.Do(t, server.Router())
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	server, auditor := testutil.NewTestServer(t, "")

	rr := (&testutil.HTTPRequest{
		Method: "POST",
		Path:   "/v1/rules/validate",
		Body:   `{"expression": "(.Age is greater than 18"}`,
	}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var result expr.ValidationResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Valid {
		t.Error("expected invalid result")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Unbalanced parentheses in expression" {
		t.Errorf("Errors = %v", result.Errors)
	}

	events := auditor.Events()
	if len(events) != 1 || events[0].Action != audit.ActionValidated || events[0].Status != audit.StatusFailure {
		t.Errorf("unexpected audit events: %+v", events)
	}
}

func TestComparatorsEndpoint(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")
	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/comparators"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var resp struct {
		Comparators []struct {
			Value string `json:"value"`
			Name  string `json:"name"`
		} `json:"comparators"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Comparators) != 15 {
		t.Errorf("expected 15 comparators, got %d", len(resp.Comparators))
	}
}

func TestSnapshotETag(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")
	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/snapshot"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag header")
	}

	rr2 := (&testutil.HTTPRequest{
		Method:  "GET",
		Path:    "/v1/registry/snapshot",
		Headers: map[string]string{"If-None-Match": etag},
	}).Do(t, server.Router())
	if rr2.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rr2.Code)
	}
	if rr2.Body.Len() != 0 {
		t.Errorf("304 response must have an empty body, got %q", rr2.Body.String())
	}
}

func TestTablePropertiesEndpoint(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")

	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/tables/car/properties"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Table      string              `json:"table"`
		Properties []registry.Property `json:"properties"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Table != "CAR" || len(resp.Properties) == 0 {
		t.Errorf("unexpected response: table=%q props=%d", resp.Table, len(resp.Properties))
	}

	rr404 := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/tables/nope/properties"}).Do(t, server.Router())
	if rr404.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr404.Code)
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(rr404.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != api.ErrCodeUnknownTable {
		t.Errorf("code = %q", errResp.Code)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")

	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/suggest?q=bond+maturity"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var result registry.SuggestionResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Recommendation == nil || result.Recommendation.Table != "INVESTMENT" {
		t.Errorf("unexpected result: %+v", result)
	}

	rr400 := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/suggest"}).Do(t, server.Router())
	if rr400.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr400.Code)
	}
}

func TestTemplateEndpoint(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")

	rr := (&testutil.HTTPRequest{
		Method: "GET",
		Path:   "/v1/registry/templates/bond_maturity?campaign_id=CMP-42",
	}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var tmpl registry.CampaignTemplate
	if err := json.Unmarshal(rr.Body.Bytes(), &tmpl); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tmpl.CampaignID != "CMP-42" || len(tmpl.SuggestedRules) != 4 {
		t.Errorf("unexpected template: %+v", tmpl)
	}

	rr404 := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/templates/unknown"}).Do(t, server.Router())
	if rr404.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr404.Code)
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(rr404.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != api.ErrCodeUnknownTemplate {
		t.Errorf("code = %q", errResp.Code)
	}
}

func TestExclusionsEndpoint(t *testing.T) {
	server, _ := testutil.NewTestServer(t, "")
	rr := (&testutil.HTTPRequest{Method: "GET", Path: "/v1/registry/exclusions"}).Do(t, server.Router())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		ExclusionRules []registry.ExclusionRule    `json:"exclusion_rules"`
		Packages       []registry.ExclusionPackage `json:"packages"`
		Usage          string                      `json:"usage"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.ExclusionRules) != 15 || len(resp.Packages) != 3 {
		t.Errorf("counts wrong: %d rules, %d packages", len(resp.ExclusionRules), len(resp.Packages))
	}
	if resp.Usage == "" {
		t.Error("usage hint missing")
	}
}
