package auth

import "fmt"

// OutcomeKind classifies the result of probing a single source
type OutcomeKind int

const (
	// NotFound means the source had nothing to offer
	NotFound OutcomeKind = iota
	// Found means the source produced a non-empty token
	Found
	// LocalError means the source failed locally (unreadable file, bad JSON,
	// failed subprocess). The locator treats it like NotFound.
	LocalError
)

func (k OutcomeKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	case LocalError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of a single source lookup
type Outcome struct {
	Source   string
	Kind     OutcomeKind
	Token    string
	Location string // file path, env var name or command line
	Err      error
}

func found(source, location, token string) Outcome {
	return Outcome{Source: source, Kind: Found, Token: token, Location: location}
}

func notFound(source, location string) Outcome {
	return Outcome{Source: source, Kind: NotFound, Location: location}
}

func localError(source, location string, err error) Outcome {
	return Outcome{Source: source, Kind: LocalError, Location: location, Err: err}
}

// OK reports whether the outcome carries a usable token
func (o Outcome) OK() bool {
	return o.Kind == Found && o.Token != ""
}
