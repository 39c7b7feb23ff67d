package registry

// ExclusionRule is a pre-defined, reusable named rule that campaigns
// reference instead of re-stating common exclusion logic.
type ExclusionRule struct {
	RuleName    string `json:"rule_name"`
	Description string `json:"description"`
}

// ExclusionPackage bundles related exclusions for campaign setup.
type ExclusionPackage struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var standardExclusions = []ExclusionRule{
	{"IsCustomersHoldingMPF", "Customers holding MPF (Mandatory Provident Fund)"},
	{"IsMMOCustomers", "MMO (Mass Market Outbound) customers"},
	{"IsValidAccountAcclLevel", "Valid account at account level"},
	{"IsValidAccountCusLevel", "Valid account at customer level"},
	{"NonCreditCampaigns", "Non-credit campaign exclusion"},
	{"IsHKID", "Has Hong Kong ID"},
	{"IsTcTi", "TC/TI customer flag"},
	{"IsNRCCustomers", "Non-Resident Customer flag"},
	{"IsWelfarePayment", "Welfare payment recipients"},
	{"IsNationalityUSCAKR", "US/Canada/Korea nationality (FATCA)"},
	{"UnpreferredCustomerList", "On unpreferred customer list"},
	{"IsFullKYC", "Full KYC completed"},
	{"IsNRCCustomersTaiwan", "NRC customers - Taiwan"},
	{"IsHIPB", "HIPB (High Income Private Banking) customer"},
	{"MentalWellBeing_Ref", "Mental wellbeing reference check"},
}

var exclusionPackages = []ExclusionPackage{
	{"OfferLocal", "Standard local offer exclusions"},
	{"StandardExclusion", "Standard campaign exclusions (age, country, suppression)"},
	{"ProductSpecific", "Product-specific exclusions (per campaign)"},
}

// StandardExclusions lists the reusable exclusion rules, referenced from
// conditions as {Rule <RuleName> evaluates to true}.
func StandardExclusions() []ExclusionRule {
	out := make([]ExclusionRule, len(standardExclusions))
	copy(out, standardExclusions)
	return out
}

// ExclusionPackages lists the named exclusion bundles.
func ExclusionPackages() []ExclusionPackage {
	out := make([]ExclusionPackage, len(exclusionPackages))
	copy(out, exclusionPackages)
	return out
}
