package chat

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-marketplace/marketplace"
)

func testAgent() marketplace.Agent {
	return marketplace.Agent{
		ID:       1,
		Name:     "DeFi Portfolio Analyzer",
		Category: marketplace.CategoryWeb3,
	}
}

// immediateOptions makes replies land synchronously enough for assertions:
// zero delay plus a notify channel to wait on.
func immediateOptions(notified chan struct{}) Options {
	return Options{
		Rand:  rand.New(rand.NewSource(1)),
		Delay: func() time.Duration { return 0 },
		Notify: func() {
			select {
			case notified <- struct{}{}:
			default:
			}
		},
	}
}

func waitForMessages(t *testing.T, s *Session, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if len(s.Messages()) >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d messages, have %d", want, len(s.Messages()))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestOpenSeedsGreetingOnce(t *testing.T) {
	session := NewSession(testAgent(), Options{})

	session.Open()
	session.Open()

	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, SenderAgent, messages[0].Sender)
	assert.Contains(t, messages[0].Content, "DeFi Portfolio Analyzer")
	assert.Contains(t, messages[0].Content, "web3")
}

func TestSendIgnoresBlankInput(t *testing.T) {
	session := NewSession(testAgent(), Options{})
	session.Open()

	session.Send("")
	session.Send("   \n\t")

	assert.Len(t, session.Messages(), 1)
	assert.False(t, session.Typing())
}

func TestSendAppendsUserMessageAndReply(t *testing.T) {
	session := NewSession(testAgent(), immediateOptions(make(chan struct{}, 8)))
	session.Open()

	session.Send("  how are my yields?  ")
	waitForMessages(t, session, 3)

	messages := session.Messages()
	require.Len(t, messages, 3)

	assert.Equal(t, SenderUser, messages[1].Sender)
	assert.Equal(t, "how are my yields?", messages[1].Content)

	assert.Equal(t, SenderAgent, messages[2].Sender)
	assert.Contains(t, pool(marketplace.CategoryWeb3), messages[2].Content)
	assert.False(t, session.Typing())
}

func TestTypingIndicatorDuringDelay(t *testing.T) {
	session := NewSession(testAgent(), Options{
		Delay: func() time.Duration { return 200 * time.Millisecond },
	})
	session.Open()

	session.Send("hello")
	assert.True(t, session.Typing())

	waitForMessages(t, session, 3)
	assert.False(t, session.Typing())
}

func TestCloseCancelsPendingReply(t *testing.T) {
	session := NewSession(testAgent(), Options{
		Delay: func() time.Duration { return 50 * time.Millisecond },
	})
	session.Open()
	session.Send("hello")

	session.Close()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, session.Messages())
	assert.False(t, session.Typing())
}

func TestCloseDiscardsTranscript(t *testing.T) {
	session := NewSession(testAgent(), immediateOptions(make(chan struct{}, 8)))
	session.Open()
	session.Send("hello")
	waitForMessages(t, session, 3)

	session.Close()
	assert.Empty(t, session.Messages())

	// a closed session accepts nothing further
	session.Open()
	session.Send("still there?")
	assert.Empty(t, session.Messages())
}

func TestUnknownCategoryFallsBackToUtilityPool(t *testing.T) {
	agent := marketplace.Agent{ID: 99, Name: "Mystery", Category: "MYSTERY"}
	session := NewSession(agent, immediateOptions(make(chan struct{}, 8)))
	session.Open()
	session.Send("hello")
	waitForMessages(t, session, 3)

	messages := session.Messages()
	assert.Contains(t, pool(marketplace.CategoryUtility), messages[2].Content)
}

func TestInjectedNowStampsMessages(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := NewSession(testAgent(), Options{
		Now: func() time.Time { return fixed },
	})
	session.Open()

	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, fixed, messages[0].Timestamp)
}
