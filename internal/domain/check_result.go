package domain

import (
	"strings"
	"time"
)

const (
	SuccessPrefix = "✅ Conectado ao MySQL com sucesso! Hora atual: "
	FailurePrefix = "❌ Erro na conexão: "
)

// TimestampLayout mirrors how the database clock is printed back to the caller.
const TimestampLayout = "2006-01-02 15:04:05"

// Outcome is the tag of a CheckResult.
type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// CheckResult is the outcome of a single connectivity check.
// Exactly one of Timestamp (success) or Message (failure) is meaningful.
type CheckResult struct {
	Outcome   Outcome
	Timestamp time.Time
	Message   string
}

// Success builds a result carrying the database server time.
func Success(ts time.Time) CheckResult {
	return CheckResult{Outcome: OutcomeSuccess, Timestamp: ts}
}

// Failure builds a result carrying the driver error description.
func Failure(msg string) CheckResult {
	return CheckResult{Outcome: OutcomeFailure, Message: msg}
}

func (r CheckResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Render returns the human-readable body sent back to the client.
// A zero-value result renders as a failure so the body always carries one prefix.
func (r CheckResult) Render() string {
	if r.OK() {
		return SuccessPrefix + FormatTimestamp(r.Timestamp)
	}

	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "unknown error"
	}
	return FailurePrefix + msg
}

// FormatTimestamp prints ts as "YYYY-MM-DD HH:MM:SS", adding a six digit
// fractional part only when ts has sub-second precision.
func FormatTimestamp(ts time.Time) string {
	if ts.Nanosecond()/int(time.Microsecond) != 0 {
		return ts.Format(TimestampLayout + ".000000")
	}
	return ts.Format(TimestampLayout)
}
