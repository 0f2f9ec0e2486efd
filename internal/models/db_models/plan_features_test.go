package db_models

import (
	"encoding/json"
	"testing"
)

func TestPlanFeaturesUnknownKeysSurviveRoundTrip(t *testing.T) {
	stored := `{
		"quotas": {"profiles": 10, "export_formats": ["csv", "pdf"]},
		"capabilities": {"sentiment_analysis": true},
		"beta_flags": {"new_dashboard": true},
		"display_order": 3
	}`

	var features PlanFeatures
	if err := json.Unmarshal([]byte(stored), &features); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if features.Quotas == nil || features.Quotas.Profiles == nil || *features.Quotas.Profiles != 10 {
		t.Errorf("quotas not decoded: %+v", features.Quotas)
	}
	if features.Capabilities == nil || features.Capabilities.SentimentAnalysis == nil || !*features.Capabilities.SentimentAnalysis {
		t.Errorf("capabilities not decoded: %+v", features.Capabilities)
	}
	if _, ok := features.Extra["beta_flags"]; !ok {
		t.Error("unknown group missing from Extra")
	}
	if _, ok := features.Extra["display_order"]; !ok {
		t.Error("unknown scalar missing from Extra")
	}

	out, err := json.Marshal(features)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	for _, key := range []string{"quotas", "capabilities", "beta_flags", "display_order"} {
		if _, ok := got[key]; !ok {
			t.Errorf("key %q lost in round trip", key)
		}
	}
	if string(got["display_order"]) != "3" {
		t.Errorf("unknown value rewritten: %s", got["display_order"])
	}
}

func TestPlanFeaturesOmitsAbsentGroups(t *testing.T) {
	priority := true
	features := PlanFeatures{
		Processing: &PlanProcessing{PriorityQueue: &priority},
	}

	out, err := json.Marshal(features)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected only the processing group, got %v", got)
	}
	if _, ok := got["processing"]; !ok {
		t.Error("processing group missing")
	}
}

func TestPlanFeaturesEmptyObject(t *testing.T) {
	var features PlanFeatures
	if err := json.Unmarshal([]byte(`{}`), &features); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if features.Quotas != nil || features.Capabilities != nil || features.Processing != nil || features.Extra != nil {
		t.Errorf("empty object should decode to the zero value, got %+v", features)
	}

	out, err := json.Marshal(features)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "{}" {
		t.Errorf("zero value should encode as {}, got %s", out)
	}
}

func TestEffectivePriceIdr(t *testing.T) {
	plan := Plan{PriceIdr: 450000}
	if got := plan.EffectivePriceIdr(); got != 450000 {
		t.Errorf("expected regular price, got %v", got)
	}

	promo := 300000.0
	plan.PromoPriceIdr = &promo
	if got := plan.EffectivePriceIdr(); got != promo {
		t.Errorf("expected promo price, got %v", got)
	}
}
