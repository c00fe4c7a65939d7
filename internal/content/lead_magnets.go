package content

import (
	"fmt"
	"strings"
)

const (
	LeadMagnetImplementationRoadmap LeadMagnetID = "safe-implementation-roadmap"
	LeadMagnetPIPlanningChecklist   LeadMagnetID = "pi-planning-checklist"
	LeadMagnetReadinessAssessment   LeadMagnetID = "safe-readiness-assessment"
)

// LeadMagnet is the email sent right after someone requests a resource.
type LeadMagnet struct {
	ID          LeadMagnetID
	Subject     string
	Heading     string
	Paragraphs  []string
	DownloadURL string
	SiteURL     string
}

func (m LeadMagnet) render(leadName string) (string, error) {
	greeting := "Hi there,"
	if name := strings.TrimSpace(leadName); name != "" {
		greeting = fmt.Sprintf("Hi %s,", name)
	}
	paragraphs := append([]string{greeting}, m.Paragraphs...)
	return renderLayout(layoutData{
		Subject:    m.Subject,
		Heading:    m.Heading,
		Paragraphs: paragraphs,
		CTALabel:   "Download now",
		CTALink:    m.DownloadURL,
		SiteURL:    m.SiteURL,
	})
}

func DefaultLeadMagnets(siteURL string) []LeadMagnet {
	return []LeadMagnet{
		{
			ID:      LeadMagnetImplementationRoadmap,
			Subject: "Your SAFe Implementation Roadmap",
			Heading: "The 12-step SAFe Implementation Roadmap",
			Paragraphs: []string{
				"Thanks for requesting the SAFe Implementation Roadmap. It walks through every step from reaching the tipping point to accelerating after your first train launch.",
				"Use it as a checklist with your leadership team and mark where you are today.",
			},
			DownloadURL: siteURL + "/downloads/safe-implementation-roadmap.pdf",
			SiteURL:     siteURL,
		},
		{
			ID:      LeadMagnetPIPlanningChecklist,
			Subject: "Your PI Planning Checklist",
			Heading: "Run your next PI Planning with confidence",
			Paragraphs: []string{
				"Here is the PI Planning checklist you asked for. It covers preparation, the two-day agenda and the follow-up after the event.",
				"Teams that prepare the vision and the top features a few weeks ahead get far more out of the event.",
			},
			DownloadURL: siteURL + "/downloads/pi-planning-checklist.pdf",
			SiteURL:     siteURL,
		},
		{
			ID:      LeadMagnetReadinessAssessment,
			Subject: "Your SAFe Readiness Assessment",
			Heading: "How ready is your organisation for SAFe?",
			Paragraphs: []string{
				"Your SAFe Readiness Assessment is attached below. Answer the questions with two or three colleagues to get a balanced picture.",
				"If your score is lower than expected, that is normal. Reply to this email and we will walk through the results with you.",
			},
			DownloadURL: siteURL + "/downloads/safe-readiness-assessment.pdf",
			SiteURL:     siteURL,
		},
	}
}

// Default builds the production catalog.
func Default(siteURL string) (*Catalog, error) {
	siteURL = strings.TrimRight(siteURL, "/")
	sprint, err := SafeSprintCourse(siteURL)
	if err != nil {
		return nil, err
	}
	return NewCatalog([]Course{sprint}, DefaultLeadMagnets(siteURL))
}
