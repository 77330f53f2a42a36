package pricing

// Base hourly rates per consultation service type, in whole currency units.
var consultationRates = map[string]float64{
	"due_diligence":   400,
	"advisory":        300,
	"tokenomics":      350,
	"security_review": 450,
}

// Base prices per report type, in whole currency units.
var reportRates = map[string]float64{
	"advisory_notes":    800,
	"market_analysis":   600,
	"audit_summary":     1000,
	"tokenomics_review": 750,
}

// ConsultationRate returns the hourly base rate for a consultation service
// type, or 0 if the type is unknown.
func ConsultationRate(serviceType string) float64 {
	return consultationRates[serviceType]
}

// ReportRate returns the base price for a report type, or 0 if unknown.
func ReportRate(reportType string) float64 {
	return reportRates[reportType]
}
