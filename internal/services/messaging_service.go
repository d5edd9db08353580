package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"shophood/internal/domain"
	"shophood/internal/store"
)

var (
	ErrEmptyMessage     = errors.New("message body is empty")
	ErrUnknownRecipient = errors.New("recipient does not exist")
)

type MessagingService struct {
	Store *store.Store
}

func NewMessagingService(st *store.Store) *MessagingService {
	return &MessagingService{Store: st}
}

// ConversationsFor groups the user's messages by counterpart (the other
// participant) and sorts each thread by timestamp. The sort key is explicit
// rather than relying on append order, so threads stay correct even if a
// snapshot is ever restored out of order.
func (s *MessagingService) ConversationsFor(userID string) map[string][]domain.Message {
	out := make(map[string][]domain.Message)
	for _, m := range s.Store.State().Messages {
		var other string
		switch userID {
		case m.FromUserID:
			other = m.ToUserID
		case m.ToUserID:
			other = m.FromUserID
		default:
			continue
		}
		out[other] = append(out[other], m)
	}
	for other := range out {
		msgs := out[other]
		sort.SliceStable(msgs, func(i, j int) bool {
			return msgs[i].Timestamp.Before(msgs[j].Timestamp)
		})
	}
	return out
}

// Send appends a message with read=false. A body that is empty after trimming
// is rejected without touching state.
func (s *MessagingService) Send(from, to, body string) (domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if _, ok := s.Store.State().UserByID(to); !ok {
		return domain.Message{}, ErrUnknownRecipient
	}
	m := domain.Message{
		ID:         uuid.NewString(),
		FromUserID: from,
		ToUserID:   to,
		Content:    body,
		Timestamp:  time.Now().UTC(),
	}
	s.Store.Dispatch(store.AddMessage{Message: m})
	return m, nil
}

// MarkRead flips the read flag on a message addressed to userID. Idempotent;
// unknown ids and messages addressed to someone else are safe no-ops.
func (s *MessagingService) MarkRead(userID, id string) {
	for _, m := range s.Store.State().Messages {
		if m.ID == id && m.ToUserID == userID {
			s.Store.Dispatch(store.MarkMessageRead{ID: id})
			return
		}
	}
}

// UnreadCount counts messages addressed to the user that are still unread.
func (s *MessagingService) UnreadCount(userID string) int {
	n := 0
	for _, m := range s.Store.State().Messages {
		if m.ToUserID == userID && !m.Read {
			n++
		}
	}
	return n
}
