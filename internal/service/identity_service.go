package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/auth"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/notify"
	"github.com/zerotabs/backend/internal/storage"
)

// IdentityService implements the signup/verify/login/refresh/reset flows.
//
// Token model: one short-lived access token plus one refresh token per
// login. The refresh token is stored on the user document as the single
// currently-valid one, so a new login invalidates the previous session's
// refresh token.
type IdentityService struct {
	store       storage.Store
	tokens      *auth.TokenManager
	notifier    notify.Notifier
	resetOTPTTL time.Duration
}

// NewIdentityService creates an identity service.
func NewIdentityService(store storage.Store, tokens *auth.TokenManager, notifier notify.Notifier, resetOTPTTL time.Duration) *IdentityService {
	return &IdentityService{
		store:       store,
		tokens:      tokens,
		notifier:    notifier,
		resetOTPTTL: resetOTPTTL,
	}
}

// SignupRequest carries the caller's registration data.
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Signup registers a new unverified user and dispatches a verification OTP.
// The OTP is also returned so the transport layer can echo it in development
// builds. Fails with Conflict when the email is already registered.
func (s *IdentityService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	if req.Email == "" {
		return nil, "", apperr.New(apperr.InvalidInput, "email required")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, "", apperr.Wrap(apperr.InvalidInput, "invalid password", err)
	}

	key := models.UserKey(req.Email)
	switch _, err := s.store.GetUser(ctx, key); {
	case err == nil:
		return nil, "", apperr.New(apperr.Conflict, "user already exists")
	case !errors.Is(err, storage.ErrNotFound):
		return nil, "", apperr.Wrap(apperr.Internal, "failed to check existing user", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}
	otp, err := auth.GenerateOTP(auth.OTPLength)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to generate otp", err)
	}

	user := &models.User{
		UserID:    key,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		Verified:  false,
		OTP:       otp,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to persist user", err)
	}

	s.sendBestEffort(ctx, req.Email,
		"Your ZeroTabs OTP Verification Code",
		fmt.Sprintf("<h2>Welcome to ZeroTabs</h2><p>Your One-Time Password (OTP) is:</p><h1>%s</h1><p>Please don't share it.</p>", otp),
	)

	slog.Info("User registered", "user_id", user.UserID)
	return user, otp, nil
}

// Verify confirms the signup OTP, marking the account verified and clearing
// the code (one-shot).
func (s *IdentityService) Verify(ctx context.Context, email, code string) error {
	user, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.OTP == "" || user.OTP != code {
		return apperr.New(apperr.InvalidInput, "invalid otp")
	}

	user.Verified = true
	user.OTP = ""
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to persist user", err)
	}

	slog.Info("User verified", "user_id", user.UserID)
	return nil
}

// LoginResult is a successful authentication: a token pair plus the safe
// user profile.
type LoginResult struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	User         models.Profile `json:"user"`
}

// Login authenticates the user and issues an access/refresh token pair. The
// refresh token replaces any previously stored one, so a prior login's
// refresh token stops working.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.Verified {
		return nil, apperr.New(apperr.Forbidden, "user not verified")
	}
	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, "invalid credentials", err)
	}

	accessToken, err := s.tokens.GenerateAccess(user.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to issue access token", err)
	}
	refreshToken, err := s.tokens.GenerateRefresh(user.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to issue refresh token", err)
	}

	user.RefreshToken = refreshToken
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist refresh token", err)
	}

	slog.Info("User logged in", "user_id", user.UserID)
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user.Profile(),
	}, nil
}

// Refresh validates a refresh token against the stored one and issues a new
// access token. The refresh token itself is not rotated here. Any
// decode/validation failure, unknown subject or mismatch against the stored
// token yields Unauthorized.
func (s *IdentityService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", apperr.Wrap(apperr.Unauthorized, "invalid refresh token", err)
	}

	user, err := s.store.GetUser(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperr.Wrap(apperr.Unauthorized, "invalid refresh token", err)
		}
		return "", apperr.Wrap(apperr.Internal, "failed to load user", err)
	}

	if user.RefreshToken != refreshToken {
		return "", apperr.New(apperr.Unauthorized, "refresh token mismatch")
	}

	accessToken, err := s.tokens.GenerateAccess(user.UserID)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to issue access token", err)
	}
	return accessToken, nil
}

// ForgotPassword stores a time-bounded reset OTP on the user document and
// dispatches it.
func (s *IdentityService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := auth.GenerateOTP(auth.OTPLength)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to generate otp", err)
	}
	expiry := time.Now().UTC().Add(s.resetOTPTTL)

	user.ResetOTP = otp
	user.ResetOTPExpiry = &expiry
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to persist user", err)
	}

	s.sendBestEffort(ctx, email,
		"Your Password Reset OTP",
		fmt.Sprintf("<p>Use this OTP to reset your password: <b>%s</b></p><p>This code expires in %d minutes.</p>", otp, int(s.resetOTPTTL.Minutes())),
	)

	slog.Info("Password reset OTP issued", "user_id", user.UserID)
	return nil
}

// ResetPassword completes an OTP-gated password reset. Fails with
// InvalidInput when no OTP is pending or the supplied one does not match,
// and with Expired when the OTP window has elapsed.
func (s *IdentityService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.ResetOTP == "" || user.ResetOTPExpiry == nil {
		return apperr.New(apperr.InvalidInput, "no otp found, request a new one")
	}
	if time.Now().UTC().After(*user.ResetOTPExpiry) {
		return apperr.New(apperr.Expired, "otp expired")
	}
	if user.ResetOTP != otp {
		return apperr.New(apperr.InvalidInput, "invalid otp")
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid password", err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	user.Password = hash
	user.ResetOTP = ""
	user.ResetOTPExpiry = nil
	if err := s.store.UpsertUser(ctx, user); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to persist user", err)
	}

	slog.Info("Password reset", "user_id", user.UserID)
	return nil
}

// Me returns the safe profile for the given user key (from access-token
// claims).
func (s *IdentityService) Me(ctx context.Context, userKey string) (*models.Profile, error) {
	user, err := s.store.GetUser(ctx, userKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.Unauthorized, "unknown user", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	profile := user.Profile()
	return &profile, nil
}

// getUserByEmail loads a user by the email-derived document key.
func (s *IdentityService) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, models.UserKey(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "user not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	return user, nil
}

// findUserByEmail locates a user via a field-equality scan. The reset flows
// use the scan path rather than key derivation, matching the store's
// scan-by-field contract.
func (s *IdentityService) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "user not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to find user", err)
	}
	return user, nil
}

// sendBestEffort dispatches a notification, logging failures instead of
// propagating them.
func (s *IdentityService) sendBestEffort(ctx context.Context, to, subject, body string) {
	if err := s.notifier.Send(ctx, to, subject, body); err != nil {
		slog.Warn("Notification delivery failed", "to", to, "subject", subject, "error", err)
	}
}
