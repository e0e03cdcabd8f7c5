package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/revkae/hotel-management/internal/api/dto"
	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/service"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// ReservationsHandler manages reservation endpoints.
type ReservationsHandler struct {
	service *service.ReservationService
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservationService *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{service: reservationService}
}

// Create POST /api/reservations.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reservation, err := h.service.Create(c.UserContext(), service.ReservationCreateInput{
		UserID:  req.UserID,
		HotelID: req.HotelID,
		Date:    req.Date,
		Status:  domain.ReservationStatus(req.Status),
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reservation})
}

// List GET /api/reservations.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	reservations, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return c.JSON(fiber.Map{"data": reservations})
}

// Get GET /api/reservations/:id.
func (h *ReservationsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	reservation, err := h.service.FindOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reservation})
}

// Update PATCH /api/reservations/:id.
func (h *ReservationsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.ReservationUpdateInput{
		UserID:  req.UserID,
		HotelID: req.HotelID,
		Date:    req.Date,
		Notes:   req.Notes,
	}
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		input.Status = &status
	}

	reservation, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reservation})
}

// Delete DELETE /api/reservations/:id.
func (h *ReservationsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "deleted": true}})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
