package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(id string, status Status, endIn int, now time.Time) *Subscription {
	return &Subscription{
		ID:       id,
		ClientID: "cl-1",
		Status:   status,
		EndDate:  now.AddDate(0, 0, endIn),
	}
}

func TestClassify_PicksActiveRegardlessOfOrder(t *testing.T) {
	now := time.Now()
	history := []*Subscription{
		sub("s-old", StatusExpired, -60, now),
		sub("s-cancelled", StatusCancelled, -30, now),
		sub("s-active", StatusActive, 20, now),
	}

	view := Classify(history, now)
	require.Equal(t, StateActive, view.State)
	assert.Equal(t, "s-active", view.Subscription.ID)
	assert.ElementsMatch(t, []Action{ActionRenew, ActionCancel, ActionSubscribeAnother}, view.Actions)
}

func TestClassify_FirstExpiredWhenNoActive(t *testing.T) {
	now := time.Now()
	history := []*Subscription{
		sub("s-cancelled", StatusCancelled, -10, now),
		sub("s-exp-1", StatusExpired, -5, now),
		sub("s-exp-2", StatusExpired, -90, now),
	}

	view := Classify(history, now)
	require.Equal(t, StateLapsed, view.State)
	assert.Equal(t, "s-exp-1", view.Subscription.ID, "first expired by list order wins")
	assert.ElementsMatch(t, []Action{ActionRenew, ActionSubscribeAnother}, view.Actions)
}

func TestClassify_NoMembership(t *testing.T) {
	now := time.Now()
	view := Classify([]*Subscription{sub("s-c", StatusCancelled, -1, now)}, now)
	require.Equal(t, StateNone, view.State)
	assert.Nil(t, view.Subscription)
	assert.Equal(t, []Action{ActionSubscribe}, view.Actions)

	view = Classify(nil, now)
	assert.Equal(t, StateNone, view.State)
}

func TestClassify_OverdueActiveIsStillActiveAndUrgent(t *testing.T) {
	now := time.Now()
	view := Classify([]*Subscription{sub("s-a", StatusActive, -3, now)}, now)
	require.Equal(t, StateActive, view.State)
	assert.Equal(t, -3, view.DaysRemaining)
	assert.Equal(t, BandUrgent, view.Urgency)
}

func TestUrgencyBand(t *testing.T) {
	cases := []struct {
		days int
		want Band
	}{
		{31, BandAmple},
		{16, BandAmple},
		{15, BandWarning},
		{10, BandWarning},
		{8, BandWarning},
		{7, BandUrgent},
		{5, BandUrgent},
		{0, BandUrgent},
		{-3, BandUrgent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UrgencyBand(tc.days), "days=%d", tc.days)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := &Subscription{EndDate: now.AddDate(0, 0, 31)}
	assert.Equal(t, 31, s.DaysRemaining(now))

	s.EndDate = now.AddDate(0, 0, -3)
	assert.Equal(t, -3, s.DaysRemaining(now))
}
