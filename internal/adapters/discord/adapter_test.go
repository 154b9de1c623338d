package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoHandler struct {
	mu       sync.Mutex
	inFlight int
	maxSeen  int
	calls    int
}

func (h *echoHandler) Handle(_ context.Context, text string, fromBot bool) (string, bool) {
	h.mu.Lock()
	h.calls++
	h.inFlight++
	if h.inFlight > h.maxSeen {
		h.maxSeen = h.inFlight
	}
	h.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	h.mu.Lock()
	h.inFlight--
	h.mu.Unlock()

	if fromBot || text != "!ping" {
		return "", false
	}
	return "pong", true
}

func newTestAdapter(h MessageHandler) (*Adapter, *test.Hook) {
	log, hook := test.NewNullLogger()
	return &Adapter{handler: h, log: log, ctx: context.Background()}, hook
}

type sent struct{ channel, text string }

func TestAdapter_DispatchSendsReply(t *testing.T) {
	a, _ := newTestAdapter(&echoHandler{})

	var got []sent
	send := func(ch, text string) error {
		got = append(got, sent{ch, text})
		return nil
	}

	a.dispatch(send, "1234", "!ping", false)
	a.dispatch(send, "1234", "hello", false)
	a.dispatch(send, "1234", "!ping", true)

	assert.Equal(t, []sent{{"1234", "pong"}}, got)
}

func TestAdapter_DispatchLogsSendFailure(t *testing.T) {
	a, hook := newTestAdapter(&echoHandler{})

	a.dispatch(func(string, string) error { return errors.New("missing permissions") }, "1234", "!ping", false)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "1234", entry.Data["channel"])
}

func TestAdapter_DispatchIsSerialized(t *testing.T) {
	h := &echoHandler{}
	a, _ := newTestAdapter(h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.dispatch(func(string, string) error { return nil }, "1234", "!ping", false)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, h.calls)
	assert.Equal(t, 1, h.maxSeen)
}

func TestNewAdapter_SetsIntents(t *testing.T) {
	a, err := NewAdapter("token", &echoHandler{}, logrus.New())
	require.NoError(t, err)

	assert.NotZero(t, a.session.Identify.Intents&discordgo.IntentsMessageContent)
}
