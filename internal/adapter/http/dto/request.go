package dto

// AnalyzeChartRequest carries an explicit code sample for analysis. When
// Codes is empty the handler samples the stored chart instead.
type AnalyzeChartRequest struct {
	CompanyID string   `json:"company_id"`
	Codes     []string `json:"codes,omitempty"`
}

// ClassifyRequest asks for one account classification.
type ClassifyRequest struct {
	CompanyID string `json:"company_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}
