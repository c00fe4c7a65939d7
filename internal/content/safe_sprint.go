package content

import "fmt"

// SafeSprintFinalDay is the last lesson of the safe-sprint course.
const SafeSprintFinalDay = 5

type lessonSpec struct {
	day        int
	subject    string
	heading    string
	paragraphs []string
	ctaLabel   string
	ctaPath    string
}

// SafeSprintCourse builds the 5-day SAFe sprint course. Day 0 is the welcome.
func SafeSprintCourse(siteURL string) (Course, error) {
	specs := []lessonSpec{
		{
			day:     0,
			subject: "Welcome to the 5-Day SAFe Sprint",
			heading: "You're in. Here is what the next five days look like.",
			paragraphs: []string{
				"Thanks for joining the 5-Day SAFe Sprint. Every morning for the next five days you will get one short lesson on scaling agile with the Scaled Agile Framework.",
				"Day 1 covers the core values, day 2 the Agile Release Train, day 3 PI Planning, day 4 Lean Portfolio Management and day 5 how to start your own implementation.",
				"Each lesson takes less than ten minutes to read. Keep an eye on your inbox tomorrow.",
			},
			ctaLabel: "Browse our SAFe courses",
			ctaPath:  "/training",
		},
		{
			day:     1,
			subject: "Day 1: The four SAFe core values",
			heading: "Alignment, built-in quality, transparency and program execution",
			paragraphs: []string{
				"SAFe rests on four core values. Alignment keeps every team pulling in the same direction. Built-in quality means quality is never an afterthought.",
				"Transparency builds the trust that lets teams make decisions quickly. Program execution is what turns all of that into working solutions.",
				"Exercise: pick one value and write down a place where your organisation struggles with it today.",
			},
			ctaLabel: "Read more about SAFe principles",
			ctaPath:  "/resources/safe-principles",
		},
		{
			day:     2,
			subject: "Day 2: Inside the Agile Release Train",
			heading: "Teams of agile teams",
			paragraphs: []string{
				"An Agile Release Train (ART) is a long-lived team of agile teams, typically 50 to 125 people, that plans, commits and delivers together.",
				"The Release Train Engineer, Product Management and the System Architect give the train its direction. Every team on the train shares the same cadence.",
				"Exercise: sketch the value stream your first train would serve.",
			},
			ctaLabel: "See how we launch ARTs",
			ctaPath:  "/services/art-launch",
		},
		{
			day:     3,
			subject: "Day 3: PI Planning, the heartbeat of SAFe",
			heading: "Two days that align the whole train",
			paragraphs: []string{
				"PI Planning is a face-to-face (or virtual) event where every team on the train plans the next Program Increment together.",
				"Business context and vision come first, then teams break out, draft plans, surface risks and commit to PI objectives.",
				"Exercise: list the three biggest cross-team dependencies you would expect in your first PI.",
			},
			ctaLabel: "Get the PI Planning checklist",
			ctaPath:  "/resources/pi-planning-checklist",
		},
		{
			day:     4,
			subject: "Day 4: Lean Portfolio Management",
			heading: "Funding value streams instead of projects",
			paragraphs: []string{
				"Lean Portfolio Management connects strategy to execution. Instead of funding projects, the portfolio funds value streams and lets them decide how to deliver.",
				"Epics flow through a portfolio Kanban so that only the most valuable work gets started.",
				"Exercise: identify one project in your current portfolio that could be reframed as a value stream.",
			},
			ctaLabel: "Talk to a SAFe consultant",
			ctaPath:  "/contact",
		},
		{
			day:     5,
			subject: "Day 5: Your SAFe implementation roadmap (course complete)",
			heading: "You finished the 5-Day SAFe Sprint",
			paragraphs: []string{
				"Congratulations, this is the final lesson. A successful implementation follows the roadmap: reach the tipping point, train lean-agile change agents, identify value streams and ARTs, then launch.",
				"Most organisations start by training leaders with Leading SAFe and preparing the first train launch.",
				"This completes the course. If you would like help planning your first steps, reply to this email or book a free consultation.",
			},
			ctaLabel: "Book a free consultation",
			ctaPath:  "/contact",
		},
	}

	course := Course{
		Type:     CourseSafeSprint,
		Title:    "5-Day SAFe Sprint",
		FinalDay: SafeSprintFinalDay,
		Lessons:  make(map[int]Lesson, len(specs)),
	}

	for _, s := range specs {
		link := siteURL + s.ctaPath
		html, err := renderLayout(layoutData{
			Subject:    s.subject,
			Heading:    s.heading,
			Paragraphs: s.paragraphs,
			CTALabel:   s.ctaLabel,
			CTALink:    link,
			SiteURL:    siteURL,
		})
		if err != nil {
			return Course{}, fmt.Errorf("render %s day %d: %w", CourseSafeSprint, s.day, err)
		}
		course.Lessons[s.day] = Lesson{
			Subject: s.subject,
			Text:    plainText(s.heading, s.paragraphs, s.ctaLabel, link),
			HTML:    html,
		}
	}

	return course, nil
}
