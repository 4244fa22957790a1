package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parokitomang/content-service/internal/api/dto"
	"github.com/parokitomang/content-service/internal/auth"
	"github.com/parokitomang/content-service/internal/service"
	apperrors "github.com/parokitomang/content-service/pkg/util"
)

// ContentHandler exposes slider and menu endpoints.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{content: contentService}
}

// ListSliders handles GET /api/sliders.
func (h *ContentHandler) ListSliders(c *fiber.Ctx) error {
	items, err := h.content.ListSliders(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewSliderResponses(items))
}

// CreateSlider handles POST /api/sliders.
func (h *ContentHandler) CreateSlider(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.AsDomainError(auth.ErrMissingCredential)
	}

	var req dto.CreateSliderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ImageBase64 == "" {
		return apperrors.NewValidationError("image_base64 required", nil)
	}

	item, err := h.content.CreateSlider(c.UserContext(), service.CreateSliderInput{
		ImageBase64: req.ImageBase64,
		Link:        req.Link,
		Order:       req.Order,
		Active:      req.Active,
	}, *identity)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.NewSliderResponse(*item))
}

// ListMenus handles GET /api/menus.
func (h *ContentHandler) ListMenus(c *fiber.Ctx) error {
	items, err := h.content.ListMenus(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewMenuResponses(items))
}

// CreateMenu handles POST /api/menus.
func (h *ContentHandler) CreateMenu(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.AsDomainError(auth.ErrMissingCredential)
	}

	var req dto.CreateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Icon == "" {
		return apperrors.NewValidationError("title and icon required", nil)
	}

	item, err := h.content.CreateMenu(c.UserContext(), service.CreateMenuInput{
		Title:  req.Title,
		Icon:   req.Icon,
		Route:  req.Route,
		Link:   req.Link,
		Order:  req.Order,
		Active: req.Active,
	}, *identity)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.NewMenuResponse(*item))
}
