package services

import (
	"database/sql"
	"errors"

	"feedbackhub/internal/auth"
	"feedbackhub/internal/domain"
	"feedbackhub/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrBadCreds      = errors.New("invalid credentials")
	ErrRoleMismatch  = errors.New("role mismatch")
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Manager
}

type SignupInput struct {
	Name       string
	EmpID      string
	Email      string
	Password   string
	Role       string
	Department string
}

// Signup registers a new account keyed by employee id. The password is
// stored as a bcrypt hash, never plaintext.
func (s *AuthService) Signup(in SignupInput) (*domain.User, error) {
	if _, err := s.Users.ByEmpID(in.EmpID); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:       in.Name,
		EmpID:      in.EmpID,
		Email:      in.Email,
		Hash:       string(hash),
		Role:       in.Role,
		Department: in.Department,
	}
	id, err := s.Users.Insert(u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Login checks credentials before role: a role mismatch is only reported
// once the employee id and password are known good, so probing roles
// cannot reveal which employee ids exist.
func (s *AuthService) Login(empID, password, role string) (string, *domain.User, error) {
	u, err := s.Users.ByEmpID(empID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrBadCreds
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}
	if u.Role != role {
		return "", nil, ErrRoleMismatch
	}

	token, err := s.Tokens.Issue(u.ID, u.EmpID, u.Address(), u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
