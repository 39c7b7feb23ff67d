package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCampaignType is returned for campaign types with no template.
var ErrUnknownCampaignType = errors.New("unknown campaign type")

// SuggestedRule is one rule a campaign of a given type usually needs.
type SuggestedRule struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TargetingGroup names one customer segment of a campaign and its criteria.
type TargetingGroup struct {
	Name     string `json:"name"`
	Criteria string `json:"criteria"`
}

// CampaignTemplate is the rule scaffolding for one campaign type. Rule
// names carry the campaign id suffix.
type CampaignTemplate struct {
	CampaignID        string           `json:"campaign_id"`
	CampaignType      string           `json:"campaign_type"`
	Description       string           `json:"description"`
	UniversalCriteria []string         `json:"universal_criteria"`
	SuggestedRules    []SuggestedRule  `json:"suggested_rules"`
	Groups            []TargetingGroup `json:"groups"`
}

var campaignTypes = []string{"bond_maturity"}

// Template returns the rule template for a campaign type, with rule names
// suffixed by the campaign id. Unknown types yield ErrUnknownCampaignType
// naming the valid options.
func Template(campaignID, campaignType string) (*CampaignTemplate, error) {
	if campaignType != "bond_maturity" {
		return nil, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownCampaignType, campaignType, strings.Join(campaignTypes, ", "))
	}

	return &CampaignTemplate{
		CampaignID:   campaignID,
		CampaignType: campaignType,
		Description:  "Bond maturity reinvestment campaign",
		UniversalCriteria: []string{
			"Has valid investment account (INV_ACCT_FLG)",
			"Holds at least one bond (BOND_HOLDING_CNT > 0)",
		},
		SuggestedRules: []SuggestedRule{
			{
				Name:        "OtherStandardExclusion_" + campaignID,
				Type:        "exclusion",
				Description: "Standard exclusion rules for the campaign",
			},
			{
				Name:        "StandardExcl_Eligibility",
				Type:        "eligibility",
				Description: "Standard eligibility exclusions (age, country, suppression)",
			},
			{
				Name:        "IsValidRPQ_" + campaignID,
				Type:        "targeting",
				Description: "Check if customer has valid RPQ with risk level 1-5",
			},
			{
				Name:        "IsBondMaturityInNext2Days_" + campaignID,
				Type:        "targeting",
				Description: "Check if bonds mature within 2 days",
			},
		},
		Groups: []TargetingGroup{
			{Name: "Group 1: Ready to Reinvest", Criteria: "Valid RPQ AND multiple bonds maturing"},
			{Name: "Group 2: Needs Nurturing (Single)", Criteria: "Invalid RPQ AND exactly 1 bond maturing"},
			{Name: "Group 3: Needs Nurturing (Multiple)", Criteria: "Invalid RPQ AND multiple bonds maturing"},
		},
	}, nil
}
