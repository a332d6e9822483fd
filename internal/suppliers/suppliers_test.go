package suppliers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/apperr"
)

func TestCRUD(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	sup, err := svc.Create(Input{Name: "Distribuidora Sur", TaxID: "30-1234", Email: "ventas@sur.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, sup.ID)

	updated, err := svc.Update(sup.ID, Input{Name: "Distribuidora Sur SRL", TaxID: "30-1234"})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Sur SRL", updated.Name)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(sup.ID))
	_, err = svc.Get(sup.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	_, err := svc.Create(Input{Name: "   "})
	require.Error(t, err)
	errs, ok := apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
}

func TestUpdate_Unknown(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	_, err := svc.Update("nope", Input{Name: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}
