package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  Celebration
		wantErr error
	}{
		{"valid", Celebration{GuestName: "Sarah", Occasion: OccasionBirthday, Message: "hi", ThemeID: "x"}, nil},
		{"blank guest name", Celebration{GuestName: "  ", Message: "hi"}, ErrGuestNameRequired},
		{"blank message", Celebration{GuestName: "Sarah", Message: " "}, ErrMessageRequired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.record.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseOccasion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  Occasion
	}{
		{"Birthday", OccasionBirthday},
		{"birthday", OccasionBirthday},
		{" ANNIVERSARY ", OccasionAnniversary},
		{"graduation", OccasionGraduation},
		{"engagement", OccasionEngagement},
		{"retirement", OccasionOther},
		{"", OccasionOther},
	}

	for _, tt := range tests {
		if got := ParseOccasion(tt.value); got != tt.want {
			t.Fatalf("ParseOccasion(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestStateWireShape(t *testing.T) {
	t.Parallel()

	state := ActiveState(Celebration{GuestName: "Sarah", Occasion: OccasionBirthday, Message: "hi", ThemeID: "golden-lights"})
	payload, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	for _, key := range []string{`"active":true`, `"guestName":"Sarah"`, `"themeId":"golden-lights"`} {
		if !strings.Contains(string(payload), key) {
			t.Fatalf("expected %s in wire payload %s", key, payload)
		}
	}

	standby, err := json.Marshal(StandbyState())
	if err != nil {
		t.Fatalf("marshal standby: %v", err)
	}
	if !strings.Contains(string(standby), `"active":false`) {
		t.Fatalf("expected standby sentinel to be explicit, got %s", standby)
	}
	if strings.Contains(string(standby), `"celebration"`) {
		t.Fatalf("expected standby to omit the celebration, got %s", standby)
	}
}
