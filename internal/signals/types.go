// Package signals turns raw profile and job text into typed facts.
//
// Every extractor is a pure function of its input. A missing signal always
// resolves to an explicit unknown/none value and extractors never panic on
// empty or odd input.
package signals

// Function is the categorical function of a role.
type Function string

const (
	FunctionIBPE               Function = "ib_pe"
	FunctionConsulting         Function = "consulting"
	FunctionFinanceAccounting  Function = "finance_accounting"
	FunctionRealEstate         Function = "real_estate"
	FunctionSales              Function = "sales"
	FunctionMarketingAnalytics Function = "marketing_analytics"
	FunctionBrandMarketing     Function = "brand_marketing"
	FunctionProgramOps         Function = "program_ops"
	FunctionCustomerSuccess    Function = "customer_success"
	FunctionGovernment         Function = "government"
	FunctionSoftwareData       Function = "software_data"
	FunctionResearch           Function = "research"
	FunctionClinical           Function = "clinical"
	FunctionUnknown            Function = "unknown"
)

var functionLabels = map[Function]string{
	FunctionIBPE:               "investment banking / private equity",
	FunctionConsulting:         "consulting",
	FunctionFinanceAccounting:  "finance / accounting",
	FunctionRealEstate:         "real estate",
	FunctionSales:              "sales",
	FunctionMarketingAnalytics: "marketing analytics",
	FunctionBrandMarketing:     "brand marketing",
	FunctionProgramOps:         "program / operations",
	FunctionCustomerSuccess:    "customer success",
	FunctionGovernment:         "government / public sector",
	FunctionSoftwareData:       "software / data",
	FunctionResearch:           "research",
	FunctionClinical:           "clinical",
	FunctionUnknown:            "general",
}

// Label is the human readable name of the function.
func (f Function) Label() string {
	if l, ok := functionLabels[f]; ok {
		return l
	}
	return functionLabels[FunctionUnknown]
}

// Seniority is the experience band implied by a posting.
type Seniority string

const (
	SeniorityInternship  Seniority = "internship"
	SeniorityEntry       Seniority = "entry"
	SeniorityEarlyCareer Seniority = "early_career"
	SeniorityExperienced Seniority = "experienced"
	SeniorityUnknown     Seniority = "unknown"
)

// SchoolTier is a letter grade of school competitiveness, S being the strongest.
type SchoolTier string

const (
	SchoolTierS       SchoolTier = "S"
	SchoolTierA       SchoolTier = "A"
	SchoolTierB       SchoolTier = "B"
	SchoolTierC       SchoolTier = "C"
	SchoolTierUnknown SchoolTier = "unknown"
)

// Strong reports whether the tier counts as a pedigree signal.
func (t SchoolTier) Strong() bool {
	return t == SchoolTierS || t == SchoolTierA
}

// GPABand is a coarse GPA bucket.
type GPABand string

const (
	GPA38Plus  GPABand = "3.8_plus"
	GPA35To379 GPABand = "3.5_3.79"
	GPA30To349 GPABand = "3.0_3.49"
	GPABelow30 GPABand = "below_3.0"
	GPAUnknown GPABand = "unknown"
)

// Strong reports whether the band counts as a pedigree signal.
func (b GPABand) Strong() bool {
	return b == GPA38Plus
}

// Competitive reports whether the band is 3.5 or higher.
func (b GPABand) Competitive() bool {
	return b == GPA38Plus || b == GPA35To379
}

// Known reports whether a band was supplied or derived.
func (b GPABand) Known() bool {
	return b != GPAUnknown && b != ""
}

// LocationConstraint describes whether the candidate limited where they can work.
type LocationConstraint string

const (
	LocationConstrained    LocationConstraint = "constrained"
	LocationNotConstrained LocationConstraint = "not_constrained"
	LocationUnclear        LocationConstraint = "unclear"
)

// TargetAlignment tells whether the job function is one the candidate targets.
type TargetAlignment string

const (
	TargetOn      TargetAlignment = "on_target"
	TargetOff     TargetAlignment = "off_target"
	TargetUnclear TargetAlignment = "unclear"
)

// EmployerTier is 1 (most competitive) through 4.
type EmployerTier int

const (
	TierOne   EmployerTier = 1
	TierTwo   EmployerTier = 2
	TierThree EmployerTier = 3
	TierFour  EmployerTier = 4
)

// Valid reports whether the tier is within 1..4.
func (t EmployerTier) Valid() bool {
	return t >= TierOne && t <= TierFour
}
