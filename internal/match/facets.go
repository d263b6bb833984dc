package match

// Facet values. The empty string is the "All" sentinel: the facet is unset
// and places no constraint.
type (
	IncomeLevel      string
	FilingStatus     string
	HouseholdSize    string
	AgeRange         string
	EmploymentStatus string
	ExpenseType      string
)

const (
	IncomeLow    IncomeLevel = "low"
	IncomeMedium IncomeLevel = "medium"
	IncomeHigh   IncomeLevel = "high"

	FilingIndividual FilingStatus = "individual"
	FilingBusiness   FilingStatus = "business"
	FilingNonProfit  FilingStatus = "non-profit"

	Household1     HouseholdSize = "1"
	Household2     HouseholdSize = "2"
	Household3     HouseholdSize = "3"
	Household4     HouseholdSize = "4"
	Household5Plus HouseholdSize = "5+"

	AgeYoung    AgeRange = "young"
	AgeMiddle   AgeRange = "middle"
	AgeSenior   AgeRange = "senior"
	AgeDisabled AgeRange = "disabled"

	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentStudent      EmploymentStatus = "student"

	ExpenseBusiness  ExpenseType = "business"
	ExpensePersonal  ExpenseType = "personal"
	ExpenseEquipment ExpenseType = "equipment"
	ExpenseTraining  ExpenseType = "training"
	ExpenseResearch  ExpenseType = "research"
)

// FacetFilters holds the six optional user-selected narrowing criteria.
// The zero value applies no narrowing at all.
type FacetFilters struct {
	IncomeLevel      IncomeLevel      `json:"income_level,omitempty"`
	FilingStatus     FilingStatus     `json:"filing_status,omitempty"`
	HouseholdSize    HouseholdSize    `json:"household_size,omitempty"`
	AgeRange         AgeRange         `json:"age_range,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employment_status,omitempty"`
	ExpenseType      ExpenseType      `json:"expense_type,omitempty"`
}

// Active returns the number of facets that are set.
func (f FacetFilters) Active() int {
	n := 0
	if f.IncomeLevel != "" {
		n++
	}
	if f.FilingStatus != "" {
		n++
	}
	if f.HouseholdSize != "" {
		n++
	}
	if f.AgeRange != "" {
		n++
	}
	if f.EmploymentStatus != "" {
		n++
	}
	if f.ExpenseType != "" {
		n++
	}
	return n
}
