package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/middleware"
	"github.com/zerotabs/backend/internal/service"
)

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req service.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	user, otp, err := s.svc.Identity.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	resp := fiber.Map{
		"message": "User registered, verify email with OTP",
		"user":    user.Profile(),
	}
	// Demo/testing convenience only; config.Verify rejects this outside dev.
	if s.cfg.IsDev() && s.cfg.Auth.OTPInResponse {
		resp["otp"] = otp
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) handleVerify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	if err := s.svc.Identity.Verify(c.Context(), req.Email, req.Code); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Email verified successfully"})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}
	if req.Email == "" || req.Password == "" {
		return apperr.New(apperr.InvalidInput, "email and password required")
	}

	result, err := s.svc.Identity.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	accessToken, err := s.svc.Identity.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

func (s *Server) handleForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	if err := s.svc.Identity.ForgotPassword(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "OTP sent to your email"})
}

func (s *Server) handleResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	if err := s.svc.Identity.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	profile, err := s.svc.Identity.Me(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
