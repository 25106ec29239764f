package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
)

type createSessionRequest struct {
	VendorID    string `json:"vendor_id"`
	SessionName string `json:"session_name"`
	CreatedBy   string `json:"created_by"`
}

type joinSessionRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

type closeSessionRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	session, err := s.svc.Sessions.Create(c.Context(), req.VendorID, req.SessionName, req.CreatedBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session created",
		"session": session,
	})
}

func (s *Server) handleJoinSession(c *fiber.Ctx) error {
	var req joinSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	session, err := s.svc.Sessions.Join(c.Context(), req.SessionID, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Joined session",
		"session": session,
	})
}

func (s *Server) handleCloseSession(c *fiber.Ctx) error {
	var req closeSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	session, err := s.svc.Sessions.Close(c.Context(), c.Params("session_id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Session closed",
		"session": session,
	})
}

func (s *Server) handleGetSession(c *fiber.Ctx) error {
	session, err := s.svc.Sessions.Get(c.Context(), c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func (s *Server) handleListSessions(c *fiber.Ctx) error {
	sessions, err := s.svc.Sessions.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}
