// Package chat maintains the site assistant conversation: an append-only
// in-memory transcript plus a conversation identifier persisted across
// runs through the session store.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/internal/session"
	"github.com/nepalailab/labsite/pkg/types"
)

// Greeting opens every fresh transcript.
const Greeting = "Namaste! I'm the Nepal AI Lab assistant. How can I help you today?"

// fallbackReply is used when a successful response carries neither a
// response nor a message field.
const fallbackReply = "Sorry, I couldn't come up with a reply. Please try again."

// genericError is the last-resort error reply.
const genericError = "Something went wrong. Please try again."

// anonymousUser is used when the store cannot supply a user identifier.
const anonymousUser = "anonymous"

// Send rejection sentinels. Neither changes the transcript.
var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrSendInFlight = errors.New("a send is already in flight")
)

// Session is one conversation. Sends are serialized by an in-flight guard:
// a second send while one is outstanding is rejected, not queued. There is
// no cancellation of an in-flight request beyond the caller's context.
//
// The persisted identifiers are read at send time and written at response
// time without cross-process locking; two clients sharing one store can
// overwrite each other's conversation identifier.
type Session struct {
	client *httpapi.Client
	store  session.Store
	log    *zap.Logger

	mu         sync.Mutex
	transcript []types.Message
	inFlight   bool
}

// NewSession creates a session whose transcript holds the greeting.
func NewSession(client *httpapi.Client, store session.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		client:     client,
		store:      store,
		log:        logger,
		transcript: []types.Message{newMessage(Greeting, types.SenderBot, nil)},
	}
}

// newMessage builds a transcript entry. The identifier is the wall clock
// in milliseconds; collisions within one tick are acceptable here.
func newMessage(text, sender string, metadata map[string]any) types.Message {
	now := time.Now()
	return types.Message{
		MessageID: strconv.FormatInt(now.UnixMilli(), 10),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
		Metadata:  metadata,
	}
}

// Transcript returns a copy of the transcript in append order.
func (s *Session) Transcript() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Message(nil), s.transcript...)
}

// ConversationID returns the persisted conversation identifier, or ""
// when none has been assigned yet.
func (s *Session) ConversationID(ctx context.Context) string {
	id, err := s.store.Get(ctx, session.KeyConversationID)
	if err != nil {
		return ""
	}
	return id
}

// chatRequest is the POST chat/ body.
type chatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
	UserID         string  `json:"user_id"`
	Timestamp      string  `json:"timestamp"`
}

// chatResponse is the POST chat/ reply. The reply text lives in Response,
// or in Message for older backends.
type chatResponse struct {
	Response       string         `json:"response"`
	Message        string         `json:"message"`
	ConversationID string         `json:"conversation_id"`
	Metadata       map[string]any `json:"metadata"`
}

// Send appends the user turn optimistically, posts it, and appends the
// assistant turn: the backend's reply on success, a classified error
// message on failure. The returned message is the appended assistant turn.
//
// Empty or whitespace-only text and sends issued while another is in
// flight are rejected with a sentinel; the transcript is unchanged.
// The optimistic user turn is never rolled back.
func (s *Session) Send(ctx context.Context, text string) (types.Message, error) {
	if isBlank(text) {
		return types.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return types.Message{}, ErrSendInFlight
	}
	s.inFlight = true
	s.transcript = append(s.transcript, newMessage(text, types.SenderUser, nil))
	s.mu.Unlock()

	reply := s.exchange(ctx, text)

	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.inFlight = false
	s.mu.Unlock()

	return reply, nil
}

// exchange performs the POST and builds the assistant turn.
func (s *Session) exchange(ctx context.Context, text string) types.Message {
	req := chatRequest{
		Message:   text,
		UserID:    s.userID(ctx),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if id := s.ConversationID(ctx); id != "" {
		req.ConversationID = &id
	}

	resp, err := s.client.Post(ctx, "chat/", req)
	if err != nil {
		s.log.Warn("chat send failed", zap.Error(err))
		return newMessage(httpapi.UserMessage(err, genericError), types.SenderBot, nil)
	}

	var payload chatResponse
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		s.log.Warn("chat response malformed", zap.Error(err))
		return newMessage(fallbackReply, types.SenderBot, nil)
	}

	if payload.ConversationID != "" {
		if err := s.store.Set(ctx, session.KeyConversationID, payload.ConversationID); err != nil {
			s.log.Warn("persisting conversation id failed", zap.Error(err))
		}
	}

	replyText := payload.Response
	if replyText == "" {
		replyText = payload.Message
	}
	if replyText == "" {
		replyText = fallbackReply
	}
	return newMessage(replyText, types.SenderBot, payload.Metadata)
}

// userID returns the persisted anonymous user identifier, creating and
// persisting one on first use. When the store cannot be read or written
// the literal anonymous identifier is used for this send.
func (s *Session) userID(ctx context.Context) string {
	id, err := s.store.Get(ctx, session.KeyUserID)
	if err == nil {
		return id
	}
	if !errors.Is(err, session.ErrKeyNotFound) {
		s.log.Warn("reading user id failed", zap.Error(err))
		return anonymousUser
	}

	id = "anon-" + uuid.NewString()
	if err := s.store.Set(ctx, session.KeyUserID, id); err != nil {
		s.log.Warn("persisting user id failed", zap.Error(err))
		return anonymousUser
	}
	return id
}

// Clear resets the transcript to the single greeting and deletes the
// persisted conversation identifier. The backend is not notified, and the
// user identifier is kept. Clear does not cancel or absorb an in-flight
// send; its reply is still appended after the fresh greeting when it
// completes.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.transcript = []types.Message{newMessage(Greeting, types.SenderBot, nil)}
	s.mu.Unlock()

	return s.store.Delete(ctx, session.KeyConversationID)
}

// isBlank reports whether the text is empty or whitespace only.
func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
