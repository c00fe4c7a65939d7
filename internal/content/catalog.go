// Package content holds the versioned email copy: drip course lessons and
// lead magnet delivery messages. Everything here is read-only after startup.
package content

import (
	"errors"
	"fmt"
	"sort"
)

type CourseType string

const CourseSafeSprint CourseType = "safe-sprint"

type LeadMagnetID string

var (
	ErrUnknownLesson    = errors.New("no lesson registered for course day")
	ErrIncompleteCourse = errors.New("course is missing lesson content")
)

// Lesson is one day of a drip course.
type Lesson struct {
	Subject string
	Text    string
	HTML    string
}

// Message is a one-off email without a plain text part.
type Message struct {
	Subject string
	HTML    string
}

type Course struct {
	Type     CourseType
	Title    string
	FinalDay int
	Lessons  map[int]Lesson
}

type Catalog struct {
	courses map[CourseType]Course
	magnets map[LeadMagnetID]LeadMagnet
}

// NewCatalog indexes the given courses and magnets. It fails when a course
// lacks content for any day in 0..FinalDay or a magnet template cannot render.
func NewCatalog(courses []Course, magnets []LeadMagnet) (*Catalog, error) {
	c := &Catalog{
		courses: make(map[CourseType]Course, len(courses)),
		magnets: make(map[LeadMagnetID]LeadMagnet, len(magnets)),
	}

	for _, course := range courses {
		if course.FinalDay < 0 {
			return nil, fmt.Errorf("course %s: final day must not be negative", course.Type)
		}
		for day := 0; day <= course.FinalDay; day++ {
			lesson, ok := course.Lessons[day]
			if !ok || lesson.Subject == "" || (lesson.Text == "" && lesson.HTML == "") {
				return nil, fmt.Errorf("%w: %s day %d", ErrIncompleteCourse, course.Type, day)
			}
		}
		if _, dup := c.courses[course.Type]; dup {
			return nil, fmt.Errorf("course %s registered twice", course.Type)
		}
		c.courses[course.Type] = course
	}

	for _, m := range magnets {
		if _, err := m.render("Subscriber"); err != nil {
			return nil, fmt.Errorf("lead magnet %s: %w", m.ID, err)
		}
		c.magnets[m.ID] = m
	}

	return c, nil
}

func (c *Catalog) Course(t CourseType) (Course, bool) {
	course, ok := c.courses[t]
	return course, ok
}

// CourseTypes lists the registered courses in a stable order.
func (c *Catalog) CourseTypes() []CourseType {
	types := make([]CourseType, 0, len(c.courses))
	for t := range c.courses {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func (c *Catalog) LessonFor(t CourseType, day int) (Lesson, error) {
	course, ok := c.courses[t]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: unknown course %s", ErrUnknownLesson, t)
	}
	lesson, ok := course.Lessons[day]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %s day %d", ErrUnknownLesson, t, day)
	}
	return lesson, nil
}

// LeadMagnetMessageFor returns false when no email is attached to the magnet.
func (c *Catalog) LeadMagnetMessageFor(id LeadMagnetID, leadName string) (Message, bool) {
	m, ok := c.magnets[id]
	if !ok {
		return Message{}, false
	}
	html, err := m.render(leadName)
	if err != nil {
		return Message{}, false
	}
	return Message{Subject: m.Subject, HTML: html}, true
}
