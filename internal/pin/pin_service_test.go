package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/apperr"
	"founderreach/internal/database/dbtest"
)

func TestService_SetupAndVerify(t *testing.T) {
	svc := NewService(NewStore(dbtest.Open(t)), true)
	assert.True(t, svc.Required())

	configured, err := svc.Configured()
	require.NoError(t, err)
	assert.False(t, configured)
	assert.True(t, apperr.IsValidation(svc.VerifyPIN("1234")))

	assert.True(t, apperr.IsValidation(svc.SetupPIN(SetupRequest{PIN: "123", ConfirmPIN: "123"})))
	assert.True(t, apperr.IsValidation(svc.SetupPIN(SetupRequest{PIN: "1234", ConfirmPIN: "1235"})))

	require.NoError(t, svc.SetupPIN(SetupRequest{PIN: "1234", ConfirmPIN: "1234"}))
	configured, err = svc.Configured()
	require.NoError(t, err)
	assert.True(t, configured)

	err = svc.SetupPIN(SetupRequest{PIN: "9999", ConfirmPIN: "9999"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	require.NoError(t, svc.VerifyPIN("1234"))
	err = svc.VerifyPIN("4321")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Incorrect PIN", apperr.Message(err))
}

func TestService_ChangePIN(t *testing.T) {
	svc := NewService(NewStore(dbtest.Open(t)), false)
	require.NoError(t, svc.SetupPIN(SetupRequest{PIN: "1234", ConfirmPIN: "1234"}))

	err := svc.ChangePIN(ChangeRequest{CurrentPIN: "0000", NewPIN: "5678", ConfirmPIN: "5678"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	err = svc.ChangePIN(ChangeRequest{CurrentPIN: "1234", NewPIN: "56", ConfirmPIN: "56"})
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, svc.ChangePIN(ChangeRequest{CurrentPIN: "1234", NewPIN: "5678", ConfirmPIN: "5678"}))
	assert.Error(t, svc.VerifyPIN("1234"))
	assert.NoError(t, svc.VerifyPIN("5678"))
}

func TestStore_SetSettingUpserts(t *testing.T) {
	store := NewStore(dbtest.Open(t))

	require.NoError(t, store.SetSetting("theme", "dark"))
	require.NoError(t, store.SetSetting("theme", "light"))

	v, err := store.GetSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}
