package subscriptions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/apperr"
	"gym_admin/internal/clients"
	"gym_admin/internal/memberships"
	"gym_admin/internal/payments"
)

func newTestService(t *testing.T) (*Service, *clients.Client, *memberships.Membership) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	clientSvc := clients.NewService(clients.NewLocalStorage(), logger)
	cl, err := clientSvc.Create(clients.Input{FirstName: "Ana", LastName: "Gómez", Document: "30111222"})
	require.NoError(t, err)

	membershipSvc := memberships.NewService(memberships.NewLocalStorage(), logger)
	plan, err := membershipSvc.Create(memberships.Input{
		Name:         "Mensual Full",
		DurationDays: 30,
		Price:        decimal.RequireFromString("25000"),
	})
	require.NoError(t, err)

	svc := NewService(NewLocalStorage(), membershipSvc, clientSvc, logger)
	return svc, cl, plan
}

func TestSubscribe_ComputesEndDateFromPlanDuration(t *testing.T) {
	svc, cl, plan := newTestService(t)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	sub, err := svc.Subscribe(SubscribeInput{
		ClientID:      cl.ID,
		MembershipID:  plan.ID,
		StartDate:     start,
		PaymentMethod: payments.Cash,
		SedeID:        "sede-1",
	})
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 30), sub.EndDate)
	assert.Equal(t, StatusActive, sub.Status)
	assert.True(t, sub.PricePaid.Equal(plan.Price), "price charged is the plan price at enrollment")
}

func TestSubscribe_Validation(t *testing.T) {
	svc, cl, plan := newTestService(t)

	_, err := svc.Subscribe(SubscribeInput{})
	fields, ok := apperr.AsFieldErrors(err)
	require.True(t, ok, "missing fields must come back as a field map")
	assert.Contains(t, fields, "client_id")
	assert.Contains(t, fields, "membership_id")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "payment_method")

	_, err = svc.Subscribe(SubscribeInput{
		ClientID:      "nope",
		MembershipID:  plan.ID,
		StartDate:     time.Now(),
		PaymentMethod: payments.Card,
	})
	fields, ok = apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "client_id")

	_, err = svc.Subscribe(SubscribeInput{
		ClientID:      cl.ID,
		MembershipID:  "nope",
		StartDate:     time.Now(),
		PaymentMethod: payments.Card,
	})
	fields, ok = apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "membership_id")
}

func TestRenew(t *testing.T) {
	t.Run("active extends from its end date", func(t *testing.T) {
		svc, cl, plan := newTestService(t)
		start := time.Now()
		sub, err := svc.Subscribe(SubscribeInput{
			ClientID: cl.ID, MembershipID: plan.ID, StartDate: start,
			PaymentMethod: payments.Cash, SedeID: "sede-1",
		})
		require.NoError(t, err)
		endBefore := sub.EndDate

		renewed, err := svc.Renew(sub.ID, payments.Card)
		require.NoError(t, err)
		assert.Equal(t, endBefore.AddDate(0, 0, 30), renewed.EndDate)
		assert.Equal(t, payments.Card, renewed.PaymentMethod)
		assert.Equal(t, StatusActive, renewed.Status)
	})

	t.Run("expired restarts from today", func(t *testing.T) {
		svc, cl, plan := newTestService(t)
		now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		sub, err := svc.Subscribe(SubscribeInput{
			ClientID: cl.ID, MembershipID: plan.ID,
			StartDate:     now.AddDate(0, 0, -90),
			PaymentMethod: payments.Cash, SedeID: "sede-1",
		})
		require.NoError(t, err)
		sub.Status = StatusExpired

		renewed, err := svc.Renew(sub.ID, payments.Transfer)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, 30), renewed.EndDate)
		assert.Equal(t, StatusActive, renewed.Status)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		svc, cl, plan := newTestService(t)
		sub, err := svc.Subscribe(SubscribeInput{
			ClientID: cl.ID, MembershipID: plan.ID, StartDate: time.Now(),
			PaymentMethod: payments.Cash, SedeID: "sede-1",
		})
		require.NoError(t, err)
		_, err = svc.Renew(sub.ID, payments.Method("vales"))
		assert.ErrorIs(t, err, payments.ErrInvalidMethod)
	})

	t.Run("unknown subscription", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Renew("nope", payments.Cash)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCancel(t *testing.T) {
	svc, cl, plan := newTestService(t)
	sub, err := svc.Subscribe(SubscribeInput{
		ClientID: cl.ID, MembershipID: plan.ID, StartDate: time.Now(),
		PaymentMethod: payments.Cash, SedeID: "sede-1",
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	_, err = svc.Cancel(sub.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExpireOverdue(t *testing.T) {
	svc, cl, plan := newTestService(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	overdue, err := svc.Subscribe(SubscribeInput{
		ClientID: cl.ID, MembershipID: plan.ID,
		StartDate:     now.AddDate(0, 0, -60),
		PaymentMethod: payments.Cash, SedeID: "sede-1",
	})
	require.NoError(t, err)
	current, err := svc.Subscribe(SubscribeInput{
		ClientID: cl.ID, MembershipID: plan.ID,
		StartDate:     now.AddDate(0, 0, -5),
		PaymentMethod: payments.Cash, SedeID: "sede-1",
	})
	require.NoError(t, err)

	n, err := svc.ExpireOverdue()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Get(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, got.Status)
	got, err = svc.Get(current.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
}

func TestViewFor(t *testing.T) {
	svc, cl, plan := newTestService(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	view, err := svc.ViewFor(cl.ID)
	require.NoError(t, err)
	assert.Equal(t, StateNone, view.State)

	_, err = svc.Subscribe(SubscribeInput{
		ClientID: cl.ID, MembershipID: plan.ID,
		StartDate:     now.AddDate(0, 0, -20), // quedan 10 días
		PaymentMethod: payments.Cash, SedeID: "sede-1",
	})
	require.NoError(t, err)

	view, err = svc.ViewFor(cl.ID)
	require.NoError(t, err)
	require.Equal(t, StateActive, view.State)
	assert.Equal(t, 10, view.DaysRemaining)
	assert.Equal(t, BandWarning, view.Urgency)
}
