package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"laundrypro/internal/models"
	"laundrypro/internal/store"
	"laundrypro/internal/validation"
)

// AccountService handles signup, login, logout and password maintenance.
type AccountService struct {
	store    store.Store
	validate *validation.Validator
	logger   *zap.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(st store.Store, validate *validation.Validator, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:    st,
		validate: validate,
		logger:   logger,
	}
}

// Signup registers a new account. The identifier must be a valid email or
// mobile number and unique across stored users; the password must satisfy the
// policy and match its confirmation.
func (s *AccountService) Signup(identifier, password, confirm string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	kind, res := s.validate.ClassifyIdentifier(identifier)
	if !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	if res := s.validate.CheckPassword(password); !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Identifier == identifier {
			return nil, fmt.Errorf("%w: %s is already registered", ErrDuplicateAccount, identifier)
		}
	}

	user := models.User{
		Identifier:     identifier,
		IdentifierKind: kind,
		Password:       password,
	}
	if err := s.store.SaveUsers(append(users, user)); err != nil {
		return nil, err
	}
	s.logger.Info("account created",
		zap.String("identifier", identifier),
		zap.String("kind", string(kind)))
	return &user, nil
}

// Login matches the identifier and password exactly (case-sensitive) against
// the stored users and establishes the session on success.
func (s *AccountService) Login(identifier, password string) (*models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Identifier == identifier && u.Password == password {
			if err := s.store.SaveSession(&u); err != nil {
				return nil, err
			}
			s.logger.Info("login", zap.String("identifier", identifier))
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: no account matches these credentials", ErrNotFound)
}

// Logout clears the session unconditionally.
func (s *AccountService) Logout() error {
	return s.store.ClearSession()
}

// ChangePassword updates the logged-in user's password after verifying the
// old one. Both the user collection and the session snapshot are updated so
// they stay consistent.
func (s *AccountService) ChangePassword(oldPassword, newPassword, confirm string) error {
	session, err := s.store.Session()
	if err != nil {
		return err
	}
	if session == nil {
		return ErrUnauthenticated
	}
	if oldPassword != session.Password {
		return fmt.Errorf("%w: old password is incorrect", ErrAuth)
	}
	if res := s.validate.CheckPassword(newPassword); !res.OK {
		return fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	return s.updatePassword(session.Identifier, newPassword)
}

// updatePassword rewrites the user's password in the users record and, when
// that user is also the active session, in the session snapshot.
func (s *AccountService) updatePassword(identifier, newPassword string) error {
	users, err := s.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Identifier == identifier {
			users[i].Password = newPassword
		}
	}
	if err := s.store.SaveUsers(users); err != nil {
		return err
	}

	session, err := s.store.Session()
	if err != nil {
		return err
	}
	if session != nil && session.Identifier == identifier {
		session.Password = newPassword
		if err := s.store.SaveSession(session); err != nil {
			return err
		}
	}
	s.logger.Info("password updated", zap.String("identifier", identifier))
	return nil
}

// findUser returns the stored user with the given identifier, if any.
func (s *AccountService) findUser(identifier string) (*models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Identifier == identifier {
			return &users[i], nil
		}
	}
	return nil, nil
}
