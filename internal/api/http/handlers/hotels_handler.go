package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/revkae/hotel-management/internal/api/dto"
	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/service"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// HotelsHandler exposes hotel CRUD endpoints.
type HotelsHandler struct {
	service *service.HotelService
}

// NewHotelsHandler constructs handler.
func NewHotelsHandler(hotelService *service.HotelService) *HotelsHandler {
	return &HotelsHandler{service: hotelService}
}

// Create POST /api/hotels.
func (h *HotelsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateHotelRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	hotel, err := h.service.Create(c.UserContext(), service.HotelCreateInput{
		Name:     req.Name,
		Location: req.Location,
		Rooms:    req.Rooms,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": hotel})
}

// List GET /api/hotels.
func (h *HotelsHandler) List(c *fiber.Ctx) error {
	hotels, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return c.JSON(fiber.Map{"data": hotels})
}

// Get GET /api/hotels/:id.
func (h *HotelsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	hotel, err := h.service.FindOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": hotel})
}

// Update PATCH /api/hotels/:id.
func (h *HotelsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateHotelRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	hotel, err := h.service.Update(c.UserContext(), id, service.HotelUpdateInput{
		Name:     req.Name,
		Location: req.Location,
		Rooms:    req.Rooms,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": hotel})
}

// Delete DELETE /api/hotels/:id.
func (h *HotelsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "deleted": true}})
}
