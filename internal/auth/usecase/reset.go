package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"task-time-tracker/internal/auth"
	"task-time-tracker/internal/auth/repository"
)

const resetTokenTTL = time.Hour

// RequestPasswordReset issues a reset token and mails the reset link.
// Unknown emails succeed silently so the endpoint cannot be used to probe
// which addresses have accounts.
func (uc *implUseCase) RequestPasswordReset(ctx context.Context, input auth.RequestPasswordResetInput) error {
	user, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RequestPasswordReset GetUserByEmail: %v", err)
		return err
	}
	if user.ID == 0 {
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		uc.l.Errorf(ctx, "uc.RequestPasswordReset newResetToken: %v", err)
		return err
	}

	if err := uc.repo.CreateResetToken(ctx, repository.CreateResetTokenOptions{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.RequestPasswordReset CreateResetToken: %v", err)
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", uc.baseURL, token)
	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below within one hour to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this mail.", link)
	if err := uc.mail.Send(user.Email, "Password reset", body); err != nil {
		uc.l.Errorf(ctx, "uc.RequestPasswordReset Send: %v", err)
		return err
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password. The token
// is single-use; expired and unknown tokens fail identically.
func (uc *implUseCase) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error {
	rt, err := uc.repo.GetResetToken(ctx, input.Token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResetPassword GetResetToken: %v", err)
		return err
	}
	if rt.UserID == 0 || time.Now().After(rt.ExpiresAt) {
		return auth.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResetPassword GenerateFromPassword: %v", err)
		return err
	}

	if err := uc.repo.UpdatePassword(ctx, rt.UserID, string(hash)); err != nil {
		uc.l.Errorf(ctx, "uc.ResetPassword UpdatePassword: %v", err)
		return err
	}

	if err := uc.repo.DeleteResetToken(ctx, input.Token); err != nil {
		uc.l.Errorf(ctx, "uc.ResetPassword DeleteResetToken: %v", err)
		return err
	}
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
