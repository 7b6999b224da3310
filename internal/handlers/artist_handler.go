package handlers

import (
	"log"

	"musicstore/internal/authz"
	"musicstore/internal/middleware"
	"musicstore/internal/models"
	"musicstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ArtistHandler handles HTTP requests for artist profiles and
// subscriptions.
type ArtistHandler struct {
	service  *services.ArtistService
	policy   *authz.Policy
	validate *validator.Validate
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(service *services.ArtistService, policy *authz.Policy) *ArtistHandler {
	return &ArtistHandler{
		service:  service,
		policy:   policy,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated catalog reads. These
// must be mounted before the auth middleware so they stay reachable
// without a token.
func (h *ArtistHandler) RegisterPublicRoutes(router fiber.Router) {
	publicRoutes := router.Group("/artists")
	publicRoutes.Get("/", h.HandleGetArtists)
	publicRoutes.Get("/:id", h.HandleGetArtistByID)
	publicRoutes.Get("/:artistId/albums", h.HandleGetArtistAlbums)
}

// RegisterRoutes registers the authenticated artist routes.
func (h *ArtistHandler) RegisterRoutes(router fiber.Router) {
	protectedRoutes := router.Group("/artists")
	protectedRoutes.Post("/", h.HandleCreateArtist)
	protectedRoutes.Put("/:id", h.HandleUpdateArtist)
	protectedRoutes.Delete("/:id", h.HandleDeleteArtist)
	protectedRoutes.Get("/:artistId/subscribers", h.HandleGetSubscribers)
	protectedRoutes.Post("/:artistId/subscribe", h.HandleSubscribe)
	protectedRoutes.Delete("/:artistId/unsubscribe", h.HandleUnsubscribe)
}

// HandleGetArtists retrieves all artist profiles.
func (h *ArtistHandler) HandleGetArtists(c *fiber.Ctx) error {
	artists, err := h.service.GetAllArtists()
	if err != nil {
		log.Printf("Error getting all artists: %v", err)
		return handleError(c, err)
	}
	return c.JSON(artists)
}

// HandleGetArtistByID retrieves a single artist profile.
func (h *ArtistHandler) HandleGetArtistByID(c *fiber.Ctx) error {
	artist, err := h.service.GetArtistByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(artist)
}

// ArtistRequest represents the request body for creating or updating an
// artist profile.
type ArtistRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Bio      string `json:"bio" validate:"omitempty,max=2000"`
	PhotoURL string `json:"photo_url" validate:"omitempty,max=500"`
}

// HandleCreateArtist creates an artist profile for the caller and promotes
// them to the ARTIST role. Responds with the profile and a reissued token.
func (h *ArtistHandler) HandleCreateArtist(c *fiber.Ctx) error {
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.HasAnyRole(identity, models.RoleUser, models.RoleAdmin) {
		return forbidden(c)
	}

	var req ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	created, err := h.service.CreateArtist(identity, services.ArtistUpdate{
		Name:     req.Name,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		log.Printf("Error creating artist profile for %s: %v", identity.Username, err)
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateArtist updates an artist profile. Only the owning user or an
// admin may do this.
func (h *ArtistHandler) HandleUpdateArtist(c *fiber.Ctx) error {
	artistID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsArtistOwner(identity, artistID) {
		return forbidden(c)
	}

	var req ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	artist, err := h.service.UpdateArtist(artistID, services.ArtistUpdate{
		Name:     req.Name,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(artist)
}

// HandleDeleteArtist removes an artist profile.
func (h *ArtistHandler) HandleDeleteArtist(c *fiber.Ctx) error {
	artistID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsArtistOwner(identity, artistID) {
		return forbidden(c)
	}

	if err := h.service.DeleteArtist(artistID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetArtistAlbums lists the artist's albums as brief views.
func (h *ArtistHandler) HandleGetArtistAlbums(c *fiber.Ctx) error {
	albums, err := h.service.GetArtistAlbums(c.Params("artistId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(albums)
}

// HandleGetSubscribers lists the artist's subscribers. Only the profile
// owner or an admin may see them.
func (h *ArtistHandler) HandleGetSubscribers(c *fiber.Ctx) error {
	artistID := c.Params("artistId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsArtistOwner(identity, artistID) {
		return forbidden(c)
	}

	subscribers, err := h.service.GetArtistSubscribers(artistID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(subscribers)
}

// HandleSubscribe subscribes the caller to an artist.
func (h *ArtistHandler) HandleSubscribe(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	subscription, err := h.service.Subscribe(identity, c.Params("artistId"))
	if err != nil {
		log.Printf("Error subscribing %s to artist %s: %v", identity.Username, c.Params("artistId"), err)
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(subscription)
}

// HandleUnsubscribe removes the caller's subscription to an artist.
func (h *ArtistHandler) HandleUnsubscribe(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	if err := h.service.Unsubscribe(identity, c.Params("artistId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
