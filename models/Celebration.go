package models

import (
	"errors"
	"strings"
	"time"
)

// Occasion enumerates the celebration types offered by the staff form.
type Occasion string

const (
	OccasionBirthday    Occasion = "Birthday"
	OccasionAnniversary Occasion = "Anniversary"
	OccasionGraduation  Occasion = "Graduation"
	OccasionEngagement  Occasion = "Engagement"
	OccasionOther       Occasion = "Other"
)

// Occasions returns the closed set of occasions in display order.
func Occasions() []Occasion {
	return []Occasion{
		OccasionBirthday,
		OccasionAnniversary,
		OccasionGraduation,
		OccasionEngagement,
		OccasionOther,
	}
}

// ParseOccasion maps free-form input onto the closed enumeration. Unknown or
// blank values become Other.
func ParseOccasion(value string) Occasion {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "birthday":
		return OccasionBirthday
	case "anniversary":
		return OccasionAnniversary
	case "graduation":
		return OccasionGraduation
	case "engagement":
		return OccasionEngagement
	default:
		return OccasionOther
	}
}

// Celebration is the wire payload shared between the staff composer and every
// subscribed display. ThemeID may reference a discovered theme that no longer
// exists; consumers resolve it leniently rather than failing.
type Celebration struct {
	GuestName string   `json:"guestName"`
	Occasion  Occasion `json:"occasion"`
	Message   string   `json:"message"`
	ThemeID   string   `json:"themeId"`
}

var (
	// ErrGuestNameRequired rejects submissions with a blank guest name.
	ErrGuestNameRequired = errors.New("guest name must not be empty")
	// ErrMessageRequired rejects submissions with a blank message.
	ErrMessageRequired = errors.New("message must not be empty")
)

// Validate enforces the submission rules the staff form applies locally.
// Invalid records are rejected before they ever reach the mailbox.
func (c Celebration) Validate() error {
	if strings.TrimSpace(c.GuestName) == "" {
		return ErrGuestNameRequired
	}
	if strings.TrimSpace(c.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

// State is the envelope stored in the single mailbox slot. A State with
// Active=false is the standby sentinel written by an explicit reset; it is
// distinct from a nil *State, which means nothing has ever been written.
type State struct {
	Active      bool         `json:"active"`
	Celebration *Celebration `json:"celebration,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ActiveState wraps a celebration for publication.
func ActiveState(c Celebration) State {
	return State{
		Active:      true,
		Celebration: &c,
		UpdatedAt:   time.Now().UTC(),
	}
}

// StandbyState returns the explicit "no active celebration" sentinel.
func StandbyState() State {
	return State{
		Active:    false,
		UpdatedAt: time.Now().UTC(),
	}
}
