package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/mail"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

// memSubscriptionRepo mimics the conditional updates of the SQL repository.
type memSubscriptionRepo struct {
	mu       sync.Mutex
	rows     map[int64]*entity.CourseSubscription
	nextID   int64
	listErr  error
	claimErr map[int64]error
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{rows: map[int64]*entity.CourseSubscription{}, claimErr: map[int64]error{}}
}

func cloneSub(s *entity.CourseSubscription) *entity.CourseSubscription {
	c := *s
	if s.LastEmailSent != nil {
		t := *s.LastEmailSent
		c.LastEmailSent = &t
	}
	if s.ClaimedUntil != nil {
		t := *s.ClaimedUntil
		c.ClaimedUntil = &t
	}
	return &c
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// seed stores a row as-is, bypassing enrollment.
func (r *memSubscriptionRepo) seed(sub *entity.CourseSubscription) *entity.CourseSubscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sub.ID = r.nextID
	r.rows[sub.ID] = cloneSub(sub)
	return sub
}

func (r *memSubscriptionRepo) get(id int64) *entity.CourseSubscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok {
		return cloneSub(row)
	}
	return nil
}

func (r *memSubscriptionRepo) Create(ctx context.Context, sub *entity.CourseSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == sub.Email && row.CourseType == sub.CourseType && !row.Completed {
			return entity.ErrDuplicateSubscription
		}
	}
	r.nextID++
	sub.ID = r.nextID
	r.rows[sub.ID] = cloneSub(sub)
	return nil
}

func (r *memSubscriptionRepo) FindByID(ctx context.Context, id int64) (*entity.CourseSubscription, error) {
	if row := r.get(id); row != nil {
		return row, nil
	}
	return nil, entity.ErrSubscriptionNotFound
}

func (r *memSubscriptionRepo) ListActive(ctx context.Context, courseType string) ([]*entity.CourseSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var subs []*entity.CourseSubscription
	for _, row := range r.rows {
		if row.CourseType == courseType && !row.Completed {
			subs = append(subs, cloneSub(row))
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ID < subs[j].ID })
	return subs, nil
}

func (r *memSubscriptionRepo) Claim(ctx context.Context, snapshot *entity.CourseSubscription, now, until time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.claimErr[snapshot.ID]; err != nil {
		return false, err
	}
	row, ok := r.rows[snapshot.ID]
	if !ok || row.Completed || row.CurrentDay != snapshot.CurrentDay || !sameTime(row.LastEmailSent, snapshot.LastEmailSent) {
		return false, nil
	}
	if row.ClaimedUntil != nil && !row.ClaimedUntil.Before(now) {
		return false, nil
	}
	row.ClaimedUntil = &until
	return true, nil
}

func (r *memSubscriptionRepo) Release(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok {
		row.ClaimedUntil = nil
	}
	return nil
}

func (r *memSubscriptionRepo) Advance(ctx context.Context, id int64, fromDay, newDay int, sentAt time.Time) error {
	if newDay < fromDay {
		return entity.ErrDayRegression
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return entity.ErrSubscriptionNotFound
	}
	if row.CurrentDay != fromDay || row.Completed {
		return entity.ErrStaleSubscription
	}
	row.CurrentDay = newDay
	row.LastEmailSent = &sentAt
	row.ClaimedUntil = nil
	return nil
}

func (r *memSubscriptionRepo) Complete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return entity.ErrSubscriptionNotFound
	}
	row.Completed = true
	row.ClaimedUntil = nil
	return nil
}

type fakeMailer struct {
	mu       sync.Mutex
	fail     bool
	sent     []mail.Message
	operator []string
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.sent = append(m.sent, msg)
	return true
}

func (m *fakeMailer) NotifyOperator(ctx context.Context, subject, html string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.operator = append(m.operator, subject)
	return true
}

func (m *fakeMailer) subjects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.Subject)
	}
	return out
}

func (m *fakeMailer) setFail(fail bool) {
	m.mu.Lock()
	m.fail = fail
	m.mu.Unlock()
}

// gappyCatalog hides one lesson of an otherwise valid catalog.
type gappyCatalog struct {
	*content.Catalog
	missingDay int
}

func (c gappyCatalog) LessonFor(t content.CourseType, day int) (content.Lesson, error) {
	if day == c.missingDay {
		return content.Lesson{}, content.ErrUnknownLesson
	}
	return c.Catalog.LessonFor(t, day)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// MockInquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) List(ctx context.Context, sort entity.InquirySort) ([]*entity.Inquiry, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) FindByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) SetRead(ctx context.Context, id string, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishInquiryReceived(ctx context.Context, event queue.InquiryReceivedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type memChatRepo struct {
	mu   sync.Mutex
	msgs []*entity.ChatMessage
	err  error
}

func (r *memChatRepo) Create(ctx context.Context, msg *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *memChatRepo) ListBySession(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChatMessage
	for _, m := range r.msgs {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}
