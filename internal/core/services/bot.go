package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

// Bot turns one chat message into at most one reply.
type Bot struct {
	controller *Controller
	log        logrus.FieldLogger
}

func NewBot(controller *Controller, log logrus.FieldLogger) *Bot {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bot{controller: controller, log: log}
}

// Handle classifies text, runs the command and renders the reply. ok is false
// when the message is not a command and nothing should be sent back.
func (b *Bot) Handle(ctx context.Context, text string, fromBot bool) (reply string, ok bool) {
	cmd := Classify(text, fromBot)
	switch cmd {
	case domain.CommandNone:
		return "", false
	case domain.CommandPing:
		return "pong", true
	}

	b.log.WithField("command", cmd).Debug("command received")
	return Render(b.controller.Execute(ctx, cmd)), true
}

// Render formats an outcome as chat text.
func Render(o domain.Outcome) string {
	switch o.Result {
	case domain.ResultSuccess:
		switch o.Command {
		case domain.CommandStatus:
			return fmt.Sprintf("ℹ️ Server status: **%s**", o.Message)
		case domain.CommandInfo:
			return fmt.Sprintf("ℹ️ Server info: `%s`", o.Message)
		}
		return fmt.Sprintf("✅ Server %s.", o.Message)
	case domain.ResultNoOp:
		return fmt.Sprintf("ℹ️ Server %s.", o.Message)
	default:
		return fmt.Sprintf("❌ %s error: `%s`", o.Command, o.Message)
	}
}
