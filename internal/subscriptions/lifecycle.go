package subscriptions

import "time"

// MembershipState is the summarized state the client detail screen shows.
type MembershipState string

const (
	StateActive MembershipState = "active"
	StateLapsed MembershipState = "lapsed"
	StateNone   MembershipState = "none"
)

// Action is one of the operations offered for the current state.
type Action string

const (
	ActionRenew            Action = "renew"
	ActionCancel           Action = "cancel"
	ActionSubscribe        Action = "subscribe"
	ActionSubscribeAnother Action = "subscribe_another"
)

// Band is the urgency treatment applied to the days-remaining indicator.
type Band string

const (
	BandAmple   Band = "ample"
	BandWarning Band = "warning"
	BandUrgent  Band = "urgent"
)

// View is the derived membership view for a client: which subscription is
// relevant, how it is classified, and which actions apply.
type View struct {
	State         MembershipState `json:"state"`
	Subscription  *Subscription   `json:"subscription,omitempty"`
	DaysRemaining int             `json:"days_remaining,omitempty"`
	Urgency       Band            `json:"urgency,omitempty"`
	Actions       []Action        `json:"actions"`
}

// Classify derives the membership view from a client's full subscription
// history, in list order: the first active record wins; failing that, the
// first expired one; failing that, the client has no membership.
func Classify(history []*Subscription, now time.Time) View {
	for _, s := range history {
		if s.Status == StatusActive {
			days := s.DaysRemaining(now)
			return View{
				State:         StateActive,
				Subscription:  s,
				DaysRemaining: days,
				Urgency:       UrgencyBand(days),
				Actions:       []Action{ActionRenew, ActionCancel, ActionSubscribeAnother},
			}
		}
	}
	for _, s := range history {
		if s.Status == StatusExpired {
			return View{
				State:        StateLapsed,
				Subscription: s,
				Actions:      []Action{ActionRenew, ActionSubscribeAnother},
			}
		}
	}
	return View{State: StateNone, Actions: []Action{ActionSubscribe}}
}

// UrgencyBand maps days remaining to a visual treatment. The two upper
// thresholds share the same band.
func UrgencyBand(daysRemaining int) Band {
	switch {
	case daysRemaining > 30:
		return BandAmple
	case daysRemaining > 15:
		return BandAmple
	case daysRemaining > 7:
		return BandWarning
	default:
		return BandUrgent
	}
}
