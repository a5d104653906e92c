package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"task-time-tracker/internal/auth"
	"task-time-tracker/internal/auth/repository"
	"task-time-tracker/internal/model"
	"task-time-tracker/pkg/session"
)

// Register creates a new account with the user role.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return auth.RegisterOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return auth.RegisterOutput{}, auth.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.RegisterOutput{}, err
	}

	return auth.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetUserByEmail: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == 0 {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token := uc.sessions.Create(session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})

	return auth.LoginOutput{Token: token, User: user}, nil
}

// Logout invalidates the session token.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	uc.sessions.Delete(token)
	return nil
}
