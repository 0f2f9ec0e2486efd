package db_models

import (
	"encoding/json"
)

// PlanFeatures is the semi-structured attribute bag stored on a plan. The
// known groups are modeled explicitly; anything else the admin UI (or an
// older/newer deploy) writes passes through Extra untouched, so feature keys
// this build does not know about survive an update round-trip.
type PlanQuotas struct {
	Profiles        *int     `json:"profiles,omitempty"`
	Hashtags        *int     `json:"hashtags,omitempty"`
	ReportsPerMonth *int     `json:"reports_per_month,omitempty"`
	ExportFormats   []string `json:"export_formats,omitempty"`
}

type PlanCapabilities struct {
	CompetitorTracking *bool `json:"competitor_tracking,omitempty"`
	SentimentAnalysis  *bool `json:"sentiment_analysis,omitempty"`
	APIAccess          *bool `json:"api_access,omitempty"`
}

type PlanProcessing struct {
	PriorityQueue    *bool `json:"priority_queue,omitempty"`
	HistoricalMonths *int  `json:"historical_months,omitempty"`
}

type PlanFeatures struct {
	Quotas       *PlanQuotas                `json:"-"`
	Capabilities *PlanCapabilities          `json:"-"`
	Processing   *PlanProcessing            `json:"-"`
	Extra        map[string]json.RawMessage `json:"-"`
}

const (
	featuresKeyQuotas       = "quotas"
	featuresKeyCapabilities = "capabilities"
	featuresKeyProcessing   = "processing"
)

func (f PlanFeatures) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(f.Extra)+3)
	for k, v := range f.Extra {
		out[k] = v
	}

	put := func(key string, v interface{}) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = raw
		return nil
	}

	if f.Quotas != nil {
		if err := put(featuresKeyQuotas, f.Quotas); err != nil {
			return nil, err
		}
	}
	if f.Capabilities != nil {
		if err := put(featuresKeyCapabilities, f.Capabilities); err != nil {
			return nil, err
		}
	}
	if f.Processing != nil {
		if err := put(featuresKeyProcessing, f.Processing); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

func (f *PlanFeatures) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw[featuresKeyQuotas]; ok {
		f.Quotas = &PlanQuotas{}
		if err := json.Unmarshal(v, f.Quotas); err != nil {
			return err
		}
		delete(raw, featuresKeyQuotas)
	}
	if v, ok := raw[featuresKeyCapabilities]; ok {
		f.Capabilities = &PlanCapabilities{}
		if err := json.Unmarshal(v, f.Capabilities); err != nil {
			return err
		}
		delete(raw, featuresKeyCapabilities)
	}
	if v, ok := raw[featuresKeyProcessing]; ok {
		f.Processing = &PlanProcessing{}
		if err := json.Unmarshal(v, f.Processing); err != nil {
			return err
		}
		delete(raw, featuresKeyProcessing)
	}

	if len(raw) > 0 {
		f.Extra = raw
	} else {
		f.Extra = nil
	}
	return nil
}
