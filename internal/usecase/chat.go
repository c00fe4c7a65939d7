package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/xavierca1/safe-leads/internal/entity"
)

const (
	chatWelcome  = "Hi! I'm the Agile Edge assistant. Ask me about SAFe training, PI Planning, certification or pricing."
	chatFallback = "Thanks for your message. A SAFe consultant will follow up shortly. You can also reach us through the contact form."
)

var ErrInvalidChatSession = ValidationErrors{{Field: "sessionId", Message: "is invalid"}}

type chatRule struct {
	keywords []string
	reply    string
}

// Rules are checked in order; the first keyword hit wins.
var chatRules = []chatRule{
	{
		keywords: []string{"price", "pricing", "cost", "quote", "budget"},
		reply:    "Pricing depends on team size and format. Share a few details through the contact form and we'll send a tailored quote within one business day.",
	},
	{
		keywords: []string{"pi planning", "program increment", "art"},
		reply:    "We facilitate PI Planning end to end: readiness check, agenda, facilitation on both days and the follow-up retrospective. Want the PI Planning checklist?",
	},
	{
		keywords: []string{"certif", "exam", "spc", "leading safe", "sspm", "popm"},
		reply:    "Our certified SPCs run Leading SAFe, SAFe Scrum Master and SAFe POPM classes. Each includes the exam voucher and a year of SAFe Studio membership.",
	},
	{
		keywords: []string{"contact", "call", "email", "talk", "meeting"},
		reply:    "Happy to talk. Leave your details in the contact form or email hello@agile-edge.training and we'll book a call.",
	},
	{
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		reply:    "Hello! How can we help with your SAFe journey today?",
	},
}

// BotReply picks the canned answer for a user message.
func BotReply(message string) string {
	text := " " + strings.ToLower(strings.TrimSpace(message)) + " "
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if matchesKeyword(text, kw) {
				return rule.reply
			}
		}
	}
	return chatFallback
}

// Short keywords must match a whole word so "hi" does not fire on "this".
func matchesKeyword(text, kw string) bool {
	if len(kw) > 4 {
		return strings.Contains(text, kw)
	}
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		if field == strings.TrimSpace(kw) {
			return true
		}
	}
	return false
}

type ChatUseCase struct {
	Repo entity.ChatRepositoryInterface
}

func NewChatUseCase(repo entity.ChatRepositoryInterface) *ChatUseCase {
	return &ChatUseCase{Repo: repo}
}

func (uc *ChatUseCase) StartSession(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	if err := uc.Repo.Create(ctx, entity.NewChatMessage(sessionID, entity.ChatSenderBot, chatWelcome)); err != nil {
		return "", storeFailure("start chat session", err)
	}
	return sessionID, nil
}

func (uc *ChatUseCase) PostMessage(ctx context.Context, input PostChatMessageInput) (*entity.ChatMessage, error) {
	var errs ValidationErrors
	if _, err := uuid.Parse(strings.TrimSpace(input.SessionID)); err != nil {
		errs = append(errs, ErrInvalidChatSession...)
	}
	errs = validateRequiredText(errs, "message", input.Message, maxMessageLength)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	sessionID := strings.TrimSpace(input.SessionID)
	text := strings.TrimSpace(input.Message)
	if err := uc.Repo.Create(ctx, entity.NewChatMessage(sessionID, entity.ChatSenderUser, text)); err != nil {
		return nil, storeFailure("save chat message", err)
	}

	reply := entity.NewChatMessage(sessionID, entity.ChatSenderBot, BotReply(text))
	if err := uc.Repo.Create(ctx, reply); err != nil {
		return nil, storeFailure("save chat reply", err)
	}
	return reply, nil
}

func (uc *ChatUseCase) History(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	sessionID = strings.TrimSpace(sessionID)
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrInvalidChatSession
	}
	msgs, err := uc.Repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, storeFailure("load chat history", err)
	}
	return msgs, nil
}
