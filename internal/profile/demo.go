package profile

// Demo returns the fixed demo identity used by the simulated login flow.
// There is exactly one portal user in the demo; real identity federation
// is out of scope.
func Demo() UserProfile {
	return UserProfile{
		Name:          "King Arthur",
		Company:       "Camelot Enterprises B.V.",
		KvK:           "88776655",
		Email:         "king.arthur@camelot.nl",
		Location:      "Den Haag",
		EmployeeCount: 25,
		AnnualRevenue: 1200000,
		Sector:        "Government & Leadership",
		BusinessKind:  "SME",
	}
}
