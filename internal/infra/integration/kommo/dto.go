package kommo

// CreateLeadInput is one website submission pushed into the CRM pipeline.
type CreateLeadInput struct {
	Name   string
	Email  string
	Phone  string
	Title  string
	Source string
	Tags   []string
}

type embeddedIDs struct {
	Embedded struct {
		Leads []struct {
			ID int `json:"id"`
		} `json:"leads"`
		Contacts []struct {
			ID int `json:"id"`
		} `json:"contacts"`
	} `json:"_embedded"`
}
