// Package core defines the types shared by the encounter pipeline with zero external dependencies.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RequestKind is the request type of an intercepted call. Values follow the game protocol enum.
type RequestKind int32

const (
	RequestKindUnknown          RequestKind = 0
	RequestKindEncounter        RequestKind = 102 // wild spawn
	RequestKindCatchPokemon     RequestKind = 103
	RequestKindIncenseEncounter RequestKind = 143
	RequestKindDiskEncounter    RequestKind = 145
)

var requestKindNames = map[RequestKind]string{
	RequestKindUnknown:          "METHOD_UNSET",
	RequestKindEncounter:        "ENCOUNTER",
	RequestKindCatchPokemon:     "CATCH_POKEMON",
	RequestKindIncenseEncounter: "INCENSE_ENCOUNTER",
	RequestKindDiskEncounter:    "DISK_ENCOUNTER",
}

func (k RequestKind) String() string {
	if name, ok := requestKindNames[k]; ok {
		return name
	}
	return "REQUEST_" + strconv.Itoa(int(k))
}

// IsEncounter reports whether k is one of the three encounter kinds.
func (k RequestKind) IsEncounter() bool {
	switch k {
	case RequestKindEncounter, RequestKindDiskEncounter, RequestKindIncenseEncounter:
		return true
	default:
		return false
	}
}

// Label is the short origin tag shown in front of a notification.
func (k RequestKind) Label() string {
	switch k {
	case RequestKindEncounter:
		return "[Wild]"
	case RequestKindDiskEncounter:
		return "[Disk]"
	case RequestKindIncenseEncounter:
		return "[Incense]"
	default:
		return "[]"
	}
}

// ParseRequestKind accepts either the enum name ("DISK_ENCOUNTER") or its number ("145").
func ParseRequestKind(s string) (RequestKind, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return RequestKind(n), nil
	}
	upper := strings.ToUpper(s)
	for k, name := range requestKindNames {
		if name == upper {
			return k, nil
		}
	}
	return RequestKindUnknown, fmt.Errorf("%w: %q", ErrUnknownRequestKind, s)
}

// CatchStatus is the outcome of a capture attempt.
type CatchStatus int32

const (
	CatchError   CatchStatus = 0
	CatchSuccess CatchStatus = 1
	CatchEscape  CatchStatus = 2
	CatchFlee    CatchStatus = 3
	CatchMissed  CatchStatus = 4
)

var catchStatusNames = map[CatchStatus]string{
	CatchError:   "CATCH_ERROR",
	CatchSuccess: "CATCH_SUCCESS",
	CatchEscape:  "CATCH_ESCAPE",
	CatchFlee:    "CATCH_FLEE",
	CatchMissed:  "CATCH_MISSED",
}

func (s CatchStatus) String() string {
	if name, ok := catchStatusNames[s]; ok {
		return name
	}
	return "CATCH_" + strconv.Itoa(int(s))
}

// IsTerminal reports whether the encounter is over: the creature was caught or fled.
func (s CatchStatus) IsTerminal() bool {
	return s == CatchSuccess || s == CatchFlee
}

// ParseCatchStatus accepts the enum name with or without the CATCH_ prefix, or its number.
func ParseCatchStatus(s string) (CatchStatus, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return CatchStatus(n), nil
	}
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "CATCH_") {
		upper = "CATCH_" + upper
	}
	for st, name := range catchStatusNames {
		if name == upper {
			return st, nil
		}
	}
	return CatchError, fmt.Errorf("%w: %q", ErrUnknownCatchStatus, s)
}

// InterceptedMessage is one response captured by the relay, already tagged with its request kind.
type InterceptedMessage struct {
	Kind    RequestKind
	Payload []byte
}

// CaptureOutcomeEvent reports the status of a capture attempt.
type CaptureOutcomeEvent struct {
	Status CatchStatus
}

// Subscription is a live attachment to a stream. Unsubscribe is synchronous and idempotent:
// once it returns, the handler is never invoked again.
type Subscription interface {
	Unsubscribe()
}
