package usecase

type SubmitLeadInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Phone      string `json:"phone"`
	Service    string `json:"service"`
	Message    string `json:"message"`
	LeadMagnet string `json:"leadMagnet"`
}

type SubmitContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SubmitInquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type EnrollCourseInput struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	CourseType string `json:"-"`
}

type PostChatMessageInput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}
