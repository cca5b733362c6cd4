package pin

import (
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"founderreach/internal/apperr"
)

// Service manages the single PIN guarding the app.
type Service struct {
	store    *Store
	required bool
}

// NewService creates a new Service. required turns the request gate on.
func NewService(store *Store, required bool) *Service {
	return &Service{store: store, required: required}
}

// Required reports whether requests must carry an unlocked session.
func (s *Service) Required() bool { return s.required }

// Configured reports whether a PIN has been set.
func (s *Service) Configured() (bool, error) {
	_, err := s.store.GetSetting(settingKey)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetupPIN stores the first PIN. It fails once a PIN exists.
func (s *Service) SetupPIN(req SetupRequest) error {
	configured, err := s.Configured()
	if err != nil {
		return err
	}
	if configured {
		return apperr.Conflict("PIN is already set", nil)
	}
	if err := checkNewPIN(req.PIN, req.ConfirmPIN); err != nil {
		return err
	}
	if err := s.save(req.PIN); err != nil {
		return err
	}
	log.Info("PIN configured")
	return nil
}

// VerifyPIN checks pin against the stored hash.
func (s *Service) VerifyPIN(pin string) error {
	hash, err := s.store.GetSetting(settingKey)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Validation("no PIN is set")
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		log.Warn("PIN verification failed")
		return apperr.Unauthorized("Incorrect PIN")
	}
	return nil
}

// ChangePIN replaces the PIN after checking the current one.
func (s *Service) ChangePIN(req ChangeRequest) error {
	if err := s.VerifyPIN(req.CurrentPIN); err != nil {
		return err
	}
	if err := checkNewPIN(req.NewPIN, req.ConfirmPIN); err != nil {
		return err
	}
	if err := s.save(req.NewPIN); err != nil {
		return err
	}
	log.Info("PIN changed")
	return nil
}

func (s *Service) save(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash PIN: %w", err)
	}
	return s.store.SetSetting(settingKey, string(hash))
}

func checkNewPIN(pin, confirm string) error {
	if len(pin) < MinLength {
		return apperr.Validation("PIN must be at least %d characters", MinLength)
	}
	if pin != confirm {
		return apperr.Validation("PINs do not match")
	}
	return nil
}
