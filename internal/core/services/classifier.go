package services

import (
	"strings"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

var commandTable = map[string]domain.Command{
	"!ping":           domain.CommandPing,
	"!server status":  domain.CommandStatus,
	"!server debug":   domain.CommandInfo,
	"!server on":      domain.CommandStart,
	"!server off":     domain.CommandStop,
	"!server restart": domain.CommandRestart,
}

// Classify maps raw chat text to a command. Messages from bots, including
// our own replies, are always ignored.
func Classify(text string, fromBot bool) domain.Command {
	if fromBot {
		return domain.CommandNone
	}
	cmd, ok := commandTable[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return domain.CommandNone
	}
	return cmd
}
