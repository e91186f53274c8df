package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/api/middleware"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/notify"
	"github.com/linskybing/logistics-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("old password is incorrect")
	ErrAccountInactive    = fmt.Errorf("%w: account is not active", ErrPermission)
)

// userManagers may list and inspect accounts.
var userManagers = []user.Role{user.RoleAdmin, user.RoleExecutive, user.RoleOperationalLead}

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Login checks the credentials of an active account and issues a token.
func (s *UserService) Login(ctx context.Context, in user.LoginInput) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", infra("load user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Status != user.StatusActive {
		return user.User{}, "", ErrAccountInactive
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Email, usr.Role, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// Register creates a driver account that waits for administrator approval.
func (s *UserService) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	return s.create(ctx, user.CreateUserInput{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      user.RoleDriver,
		Phone:     in.Phone,
	}, user.StatusPending)
}

func (s *UserService) CreateUser(ctx context.Context, actor user.Identity, in user.CreateUserInput) (*user.User, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	return s.create(ctx, in, user.StatusActive)
}

func (s *UserService) ListUsers(ctx context.Context, actor user.Identity, filter user.ListFilter) ([]user.User, error) {
	if err := requireRole(actor, userManagers...); err != nil {
		return nil, err
	}
	users, err := s.Repos.User.ListUsers(ctx, filter)
	if err != nil {
		return nil, infra("list users", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, actor user.Identity, id uuid.UUID) (*user.User, error) {
	if actor.ID != id {
		if err := requireRole(actor, userManagers...); err != nil {
			return nil, err
		}
	}
	usr, err := s.Repos.User.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound, "load user")
	}
	return &usr, nil
}

// UpdateUser edits a profile. Only admins change role or status, and never
// their own.
func (s *UserService) UpdateUser(ctx context.Context, actor user.Identity, id uuid.UUID, in user.UpdateUserInput) (*user.User, error) {
	isAdmin := actor.Role == user.RoleAdmin
	if !isAdmin && actor.ID != id {
		return nil, forbidden("you can only edit your own profile")
	}
	if in.Role != nil || in.Status != nil {
		if !isAdmin {
			return nil, forbidden("only administrators can change role or status")
		}
		if actor.ID == id {
			return nil, invalid("you cannot change your own role or status")
		}
	}

	usr, err := s.Repos.User.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound, "load user")
	}

	if in.FirstName != nil {
		usr.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		usr.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, invalidField("role", "unknown role")
		}
		usr.Role = *in.Role
	}
	if in.Status != nil {
		usr.Status = *in.Status
	}
	if in.Phone != nil {
		usr.Phone = in.Phone
	}
	if in.Department != nil {
		usr.Department = in.Department
	}
	if in.Avatar != nil {
		usr.Avatar = in.Avatar
	}

	if err := s.Repos.User.SaveUser(ctx, &usr); err != nil {
		return nil, infra("save user", err)
	}
	return &usr, nil
}

func (s *UserService) ChangePassword(ctx context.Context, actor user.Identity, in user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(ctx, actor.ID)
	if err != nil {
		return lookupErr(err, ErrUserNotFound, "load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	usr.Password = hashed
	if err := s.Repos.User.SaveUser(ctx, &usr); err != nil {
		return infra("save user", err)
	}
	return nil
}

// Session returns the current user with the navigation for their role.
func (s *UserService) Session(ctx context.Context, actor user.Identity) (user.Session, error) {
	usr, err := s.Repos.User.GetUserByID(ctx, actor.ID)
	if err != nil {
		return user.Session{}, lookupErr(err, ErrUserNotFound, "load user")
	}
	return user.Session{User: usr, Navigation: user.NavigationFor(usr.Role)}, nil
}

func (s *UserService) create(ctx context.Context, in user.CreateUserInput, status user.Status) (*user.User, error) {
	email := normalizeEmail(in.Email)
	if !in.Role.Valid() {
		return nil, invalidField("role", "unknown role")
	}
	_, err := s.Repos.User.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, infra("load user", err)
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		Email:      email,
		Password:   hashed,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Role:       in.Role,
		Phone:      in.Phone,
		Department: in.Department,
		Status:     status,
	}
	if err := s.Repos.User.CreateUser(ctx, usr); err != nil {
		return nil, infra("create user", err)
	}
	return usr, nil
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubmitterResolver finds the person to notify about a submission.
type SubmitterResolver struct {
	Repos *repository.Repos
}

func (r SubmitterResolver) SubmissionRecipient(ctx context.Context, submissionID uuid.UUID) (notify.Recipient, error) {
	sub, err := r.Repos.Submission.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return notify.Recipient{}, lookupErr(err, ErrSubmissionNotFound, "load submission")
	}
	usr, err := r.Repos.User.GetUserByID(ctx, sub.SubmittedBy)
	if err != nil {
		return notify.Recipient{}, lookupErr(err, ErrUserNotFound, "load submitter")
	}
	name := sub.SubmittedByName
	if name == "" {
		name = usr.FullName()
	}
	return notify.Recipient{Email: usr.Email, Name: name}, nil
}
