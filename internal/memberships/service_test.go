package memberships

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/apperr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalStorage(), zaptest.NewLogger(t))
}

func TestCreate(t *testing.T) {
	svc := newTestService(t)

	m, err := svc.Create(Input{
		Name:         "Mensual",
		DurationDays: 30,
		Price:        decimal.RequireFromString("25000"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.True(t, m.Active)

	got, err := svc.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mensual", got.Name)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(Input{
		Name:         "",
		DurationDays: 0,
		Price:        decimal.RequireFromString("-1"),
	})
	require.Error(t, err)

	errs, ok := apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "duration_days")
	assert.Contains(t, errs, "price")
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	m, err := svc.Create(Input{Name: "Mensual", DurationDays: 30, Price: decimal.RequireFromString("25000")})
	require.NoError(t, err)

	updated, err := svc.Update(m.ID, Input{Name: "Trimestral", DurationDays: 90, Price: decimal.RequireFromString("65000")})
	require.NoError(t, err)
	assert.Equal(t, "Trimestral", updated.Name)
	assert.Equal(t, 90, updated.DurationDays)

	_, err = svc.Update("nope", Input{Name: "x", DurationDays: 1, Price: decimal.Zero})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestList_OnlyActive(t *testing.T) {
	svc := newTestService(t)
	a, err := svc.Create(Input{Name: "Mensual", DurationDays: 30, Price: decimal.RequireFromString("25000")})
	require.NoError(t, err)
	b, err := svc.Create(Input{Name: "Anual", DurationDays: 365, Price: decimal.RequireFromString("200000")})
	require.NoError(t, err)

	b.Active = false

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	m, err := svc.Create(Input{Name: "Mensual", DurationDays: 30, Price: decimal.RequireFromString("25000")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))
	_, err = svc.Get(m.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
