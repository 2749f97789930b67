package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"agent-marketplace/marketplace"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Message is a single entry in a chat transcript. Messages live only in
// memory for the life of the session.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Options injects the session's time and randomness sources so tests can
// make the typing delay and reply selection deterministic.
type Options struct {
	// Now supplies message timestamps. Defaults to time.Now.
	Now func() time.Time

	// Rand drives reply selection and the default delay. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// Delay returns how long the agent "types" before replying. Defaults
	// to a uniform draw between 1 and 3 seconds.
	Delay func() time.Duration

	// Notify is invoked after every transcript or typing-state change.
	// It runs off the caller's goroutine when a reply lands.
	Notify func()
}

// Session is an ephemeral per-agent conversation. Nothing is persisted;
// Close discards the transcript and cancels any reply still pending.
type Session struct {
	agent marketplace.Agent
	opts  Options

	mu       sync.Mutex
	messages []Message
	typing   bool
	closed   bool
	pending  *time.Timer
}

// NewSession creates a session for the given agent.
func NewSession(agent marketplace.Agent, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{agent: agent, opts: opts}
}

// Agent returns the agent this session talks to.
func (s *Session) Agent() marketplace.Agent {
	return s.agent
}

// Open seeds the transcript with the agent's greeting. Only the first call
// has any effect.
func (s *Session) Open() {
	s.mu.Lock()
	if s.closed || len(s.messages) > 0 {
		s.mu.Unlock()
		return
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Content:   greeting(s.agent),
		Sender:    SenderAgent,
		Timestamp: s.opts.Now(),
	})
	s.mu.Unlock()
	s.notify()
}

// Send appends a user message and schedules one simulated agent reply.
// Empty or whitespace-only input is ignored.
func (s *Session) Send(text string) {
	content := strings.TrimSpace(text)
	if content == "" {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: s.opts.Now(),
	})
	s.typing = true

	reply := s.pickReply()
	s.pending = time.AfterFunc(s.delay(), func() {
		s.deliver(reply)
	})
	s.mu.Unlock()
	s.notify()
}

// deliver appends the scheduled agent reply unless the session was closed
// while it was pending.
func (s *Session) deliver(reply string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Content:   reply,
		Sender:    SenderAgent,
		Timestamp: s.opts.Now(),
	})
	s.typing = false
	s.pending = nil
	s.mu.Unlock()
	s.notify()
}

// Close discards the transcript and cancels any pending reply. A reply
// timer that already fired finds the session closed and appends nothing.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.typing = false
	s.messages = nil
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.mu.Unlock()
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Typing reports whether an agent reply is pending.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// pickReply draws uniformly from the agent's category pool. Caller holds
// the lock (the rand source is not goroutine safe).
func (s *Session) pickReply() string {
	p := pool(s.agent.Category)
	return p[s.opts.Rand.Intn(len(p))]
}

// delay is how long the typing indicator stays up before the reply lands.
// Caller holds the lock.
func (s *Session) delay() time.Duration {
	if s.opts.Delay != nil {
		return s.opts.Delay()
	}
	return time.Second + time.Duration(s.opts.Rand.Int63n(int64(2*time.Second)))
}

func (s *Session) notify() {
	if s.opts.Notify != nil {
		s.opts.Notify()
	}
}
