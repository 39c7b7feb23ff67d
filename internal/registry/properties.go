package registry

import (
	"fmt"
	"strings"
)

// Property is one catalog entry: a rule property and what it means.
type Property struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog order is fixed so listings render deterministically.

var eligibilityProperties = []Property{
	{"AGE_NUM", "Customer's age in years"},
	{"CUST_CTRY_RELN_CDE8", "Customer country relation code (8-char)"},
	{"CUST_CTRY_RELN_CDE10", "Customer country relation code (10-char)"},
	{"CUST_SUPRS_CDE2", "Suppression code 2 (e.g., CPEXCL)"},
	{"CUST_SUPRS_CDE18", "Suppression code 18 (e.g., NOMK8K - no marketing)"},
	{"CUST_SUPRS_CDE36", "Suppression code 36 (e.g., F_SANT)"},
	{"Cust_Seg_Schem_Cde10", "Customer segment scheme code"},
	{"CUST_SEGMENT", "Customer segment (Mass, Premier, etc.)"},
	{"CUST_RISK_VAL", "Customer risk value (1-5 scale)"},
	{"KYC_STATUS", "KYC verification status"},
	{"AML_FLAG", "AML flag indicator"},
}

var investmentProperties = []Property{
	{"RPQ_STATUS", "RPQ validity status (Valid/Invalid/Expired)"},
	{"RPQ_RISK_LEVEL", "RPQ risk tolerance level (1-5)"},
	{"RPQ_EXPIRY_DT", "RPQ expiry date"},
	{"INV_ACCT_FLG", "Has investment account flag"},
	{"INV_ACCT_STATUS", "Investment account status"},
	{"BOND_HOLDING_CNT", "Number of bonds held"},
	{"BOND_CERT_DEP_MAT_NXT_2_DY_CNT", "Count of bonds maturing in next 2 days"},
	{"BOND_CERT_DEPST_LATE_MTUR_DT", "Latest bond maturity date"},
	{"BOND_TOTAL_VALUE", "Total bond holdings value"},
	{"STATIC_CODE_VALID", "Static code validity flag"},
}

var carProperties = []Property{
	{"CustomerAge", "Customer's age in years"},
	{"CustomerSegment", "Customer segment (Mass, Mass Affluent, Premier, etc.)"},
	{"CustomerTenure", "Years as customer"},
	{"CustomerTier", "Customer tier level"},
	{"RelationshipManager", "Assigned RM indicator"},
	{"IsStaff", "Staff indicator"},
	{"CountryOfResidence", "Customer's country of residence"},
	{"PreferredChannel", "Preferred communication channel"},
	{"TotalRelationshipBalance", "Total balance across all products"},
	{"AverageMonthlyBalance", "Average monthly balance"},
	{"CustomerLifetimeValue", "Calculated CLV score"},
	{"RevenueContribution", "Annual revenue contribution"},
	{"ProfitabilityScore", "Customer profitability score"},
	{"HasCurrentAccount", "Has current/checking account"},
	{"HasSavingsAccount", "Has savings account"},
	{"HasCreditCard", "Has credit card product"},
	{"HasMortgage", "Has mortgage product"},
	{"HasPersonalLoan", "Has personal loan"},
	{"HasInvestment", "Has investment products"},
	{"HasInsurance", "Has insurance products"},
	{"ProductCount", "Number of products held"},
	{"DigitalActive", "Active on digital channels"},
	{"MobileAppUser", "Uses mobile banking app"},
	{"LastLoginDays", "Days since last digital login"},
	{"TransactionFrequency", "Monthly transaction count"},
	{"RiskRating", "Customer risk rating"},
	{"KYCStatus", "KYC verification status"},
	{"AMLFlag", "AML flag indicator"},
}

var aarProperties = []Property{
	{"AccountType", "Type of account (Current, Savings, etc.)"},
	{"AccountStatus", "Account status (Active, Dormant, Closed)"},
	{"RoleType", "Primary or Secondary account holder"},
	{"AccountOpenDate", "Date account was opened"},
	{"AccountTenure", "Account age in months"},
	{"CurrentBalance", "Current account balance"},
	{"AvailableBalance", "Available balance"},
	{"AverageBalance3M", "3-month average balance"},
	{"AverageBalance6M", "6-month average balance"},
	{"AverageBalance12M", "12-month average balance"},
	{"MinBalanceMTD", "Minimum balance month-to-date"},
	{"MaxBalanceMTD", "Maximum balance month-to-date"},
	{"DebitCount", "Number of debit transactions"},
	{"CreditCount", "Number of credit transactions"},
	{"DebitAmount", "Total debit amount"},
	{"CreditAmount", "Total credit amount"},
	{"LastTransactionDate", "Date of last transaction"},
	{"CreditLimit", "Credit limit amount"},
	{"CreditUtilization", "Credit utilization percentage"},
	{"OutstandingBalance", "Outstanding credit balance"},
	{"MinimumPaymentDue", "Minimum payment due"},
	{"PaymentDueDate", "Payment due date"},
	{"DaysPastDue", "Days past due"},
}

var marProperties = []Property{
	{"PropensityCreditCard", "Propensity to acquire credit card"},
	{"PropensityPersonalLoan", "Propensity to acquire personal loan"},
	{"PropensityMortgage", "Propensity to acquire mortgage"},
	{"PropensityInvestment", "Propensity to invest"},
	{"PropensityInsurance", "Propensity to buy insurance"},
	{"PropensityDeposit", "Propensity to increase deposits"},
	{"ChurnProbability", "Probability of customer churn"},
	{"RetentionScore", "Customer retention score"},
	{"AttritionRisk", "Attrition risk level (High/Medium/Low)"},
	{"ResponseProbability", "Likelihood to respond to offer"},
	{"ConversionProbability", "Likelihood to convert"},
	{"EngagementScore", "Customer engagement score"},
	{"BehavioralSegment", "Behavioral segmentation cluster"},
	{"ValueSegment", "Value-based segment"},
	{"LifestageSegment", "Lifestage segment"},
	{"NeedsCluster", "Needs-based cluster assignment"},
	{"NBARecommendation", "Next best action recommendation"},
	{"NBAScore", "NBA confidence score"},
	{"NBACategory", "NBA category (Acquire/Retain/Grow)"},
}

var propertyCatalogs = map[string][]Property{
	"CAR":         carProperties,
	"AAR":         aarProperties,
	"MAR":         marProperties,
	"ELIGIBILITY": eligibilityProperties,
	"INVESTMENT":  investmentProperties,
}

// catalogNames lists valid catalog keys for error messages.
const catalogNames = "CAR, AAR, MAR, ELIGIBILITY, INVESTMENT"

// TableProperties returns the property catalog for a table or catalog name
// (case-insensitive). Unknown names yield ErrUnknownTable naming the valid
// options.
func TableProperties(name string) ([]Property, error) {
	props, ok := propertyCatalogs[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTable, name, catalogNames)
	}
	out := make([]Property, len(props))
	copy(out, props)
	return out, nil
}
