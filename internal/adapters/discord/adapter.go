package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// MessageHandler turns a chat message into an optional reply.
type MessageHandler interface {
	Handle(ctx context.Context, text string, fromBot bool) (reply string, ok bool)
}

type sendFunc func(channelID, text string) error

// Adapter connects a MessageHandler to the Discord gateway.
type Adapter struct {
	session *discordgo.Session
	handler MessageHandler
	log     logrus.FieldLogger

	// mu serializes message handling; discordgo dispatches each event on its
	// own goroutine.
	mu  sync.Mutex
	ctx context.Context
}

func NewAdapter(token string, handler MessageHandler, log logrus.FieldLogger) (*Adapter, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	a := &Adapter{session: session, handler: handler, log: log, ctx: context.Background()}
	session.AddHandler(a.onReady)
	session.AddHandler(a.onMessageCreate)
	return a, nil
}

// Start opens the gateway connection and blocks until ctx is cancelled.
func (a *Adapter) Start(ctx context.Context) error {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	<-ctx.Done()
	return a.session.Close()
}

func (a *Adapter) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	a.log.WithField("user", r.User.String()).Info("logged in to discord")
}

func (a *Adapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	send := func(channelID, text string) error {
		_, err := s.ChannelMessageSend(channelID, text)
		return err
	}
	a.dispatch(send, m.ChannelID, m.Content, m.Author.Bot)
}

func (a *Adapter) dispatch(send sendFunc, channelID, content string, fromBot bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	reply, ok := a.handler.Handle(a.ctx, content, fromBot)
	if !ok {
		return
	}
	if err := send(channelID, reply); err != nil {
		a.log.WithError(err).WithField("channel", channelID).Warn("failed to send reply")
	}
}
