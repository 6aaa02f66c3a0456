package dto

// ImportRowError reports one rejected spreadsheet row
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"error"`
}

// ImportSummary gives the row-level tally of a bulk import
type ImportSummary struct {
	TotalRows int `json:"total_rows"`
	Imported  int `json:"imported"`
	Failed    int `json:"failed"`
}

// ImportResponse is the body of every bulk import endpoint. Success is true
// only when every data row landed.
type ImportResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Summary  ImportSummary    `json:"summary"`
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

// MessageResponse is a generic confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
