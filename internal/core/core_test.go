package core

import (
	"errors"
	"testing"
)

func TestRequestKind(t *testing.T) {
	t.Run("Label", func(t *testing.T) {
		cases := map[RequestKind]string{
			RequestKindEncounter:        "[Wild]",
			RequestKindDiskEncounter:    "[Disk]",
			RequestKindIncenseEncounter: "[Incense]",
			RequestKindCatchPokemon:     "[]",
		}
		for kind, want := range cases {
			if got := kind.Label(); got != want {
				t.Errorf("%s.Label() = %q, want %q", kind, got, want)
			}
		}
	})

	t.Run("IsEncounter", func(t *testing.T) {
		if !RequestKindDiskEncounter.IsEncounter() {
			t.Error("expected DISK_ENCOUNTER to be an encounter kind")
		}
		if RequestKindCatchPokemon.IsEncounter() {
			t.Error("expected CATCH_POKEMON not to be an encounter kind")
		}
	})

	t.Run("String", func(t *testing.T) {
		if got := RequestKind(999).String(); got != "REQUEST_999" {
			t.Errorf("unexpected name for unknown kind: %s", got)
		}
	})

	t.Run("Parse", func(t *testing.T) {
		k, err := ParseRequestKind("incense_encounter")
		if err != nil || k != RequestKindIncenseEncounter {
			t.Errorf("ParseRequestKind(name) = %v, %v", k, err)
		}
		k, err = ParseRequestKind("145")
		if err != nil || k != RequestKindDiskEncounter {
			t.Errorf("ParseRequestKind(number) = %v, %v", k, err)
		}
		_, err = ParseRequestKind("SOMETHING_ELSE")
		if !errors.Is(err, ErrUnknownRequestKind) {
			t.Errorf("expected ErrUnknownRequestKind, got %v", err)
		}
	})
}

func TestCatchStatus(t *testing.T) {
	terminal := map[CatchStatus]bool{
		CatchError:   false,
		CatchSuccess: true,
		CatchEscape:  false,
		CatchFlee:    true,
		CatchMissed:  false,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}

	st, err := ParseCatchStatus("flee")
	if err != nil || st != CatchFlee {
		t.Errorf("ParseCatchStatus(flee) = %v, %v", st, err)
	}
	st, err = ParseCatchStatus("CATCH_SUCCESS")
	if err != nil || st != CatchSuccess {
		t.Errorf("ParseCatchStatus(CATCH_SUCCESS) = %v, %v", st, err)
	}
	if _, err := ParseCatchStatus("CATCH_MAYBE"); !errors.Is(err, ErrUnknownCatchStatus) {
		t.Errorf("expected ErrUnknownCatchStatus, got %v", err)
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrMissingField)
	if !errors.Is(wrapped, ErrMissingField) {
		t.Error("expected wrapped error to match ErrMissingField")
	}
	if errors.Is(wrapped, ErrMalformedPayload) {
		t.Error("did not expect wrapped error to match ErrMalformedPayload")
	}
}
