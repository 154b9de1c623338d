package domain

// Result tags an Outcome.
type Result string

const (
	ResultSuccess Result = "success"
	ResultNoOp    Result = "noop"
	ResultFailure Result = "failure"
)

// Outcome is what the controller produced for a single command.
type Outcome struct {
	Command Command `json:"command"`
	Result  Result  `json:"result"`
	Message string  `json:"message"`

	// Err holds the cause of a failure so callers can classify it with errors.Is.
	Err error `json:"-"`
}

func Success(cmd Command, msg string) Outcome {
	return Outcome{Command: cmd, Result: ResultSuccess, Message: msg}
}

func NoOp(cmd Command, msg string) Outcome {
	return Outcome{Command: cmd, Result: ResultNoOp, Message: msg}
}

func Failure(cmd Command, err error) Outcome {
	return Outcome{Command: cmd, Result: ResultFailure, Message: err.Error(), Err: err}
}
