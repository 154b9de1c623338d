package domain

// Command is a classified chat intent.
type Command string

const (
	CommandNone    Command = ""
	CommandPing    Command = "ping"
	CommandStatus  Command = "status"
	CommandInfo    Command = "info"
	CommandStart   Command = "start"
	CommandStop    Command = "stop"
	CommandRestart Command = "restart"
)
