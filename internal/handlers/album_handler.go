package handlers

import (
	"log"
	"time"

	"musicstore/internal/authz"
	"musicstore/internal/middleware"
	"musicstore/internal/models"
	"musicstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AlbumHandler handles HTTP requests for albums, their tracks, tags,
// reviews and purchases.
type AlbumHandler struct {
	service  *services.AlbumService
	policy   *authz.Policy
	validate *validator.Validate
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(service *services.AlbumService, policy *authz.Policy) *AlbumHandler {
	return &AlbumHandler{
		service:  service,
		policy:   policy,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated catalog reads. These
// must be mounted before the auth middleware so they stay reachable
// without a token.
func (h *AlbumHandler) RegisterPublicRoutes(router fiber.Router) {
	publicRoutes := router.Group("/albums")
	publicRoutes.Get("/", h.HandleGetAlbums)
	publicRoutes.Get("/:id", h.HandleGetAlbumByID)
	publicRoutes.Get("/:albumId/reviews", h.HandleGetReviews)
	publicRoutes.Get("/:albumId/tracks", h.HandleGetTracks)

	router.Get("/tags", h.HandleGetTags)
}

// RegisterRoutes registers the authenticated album routes.
func (h *AlbumHandler) RegisterRoutes(router fiber.Router) {
	protectedRoutes := router.Group("/albums")
	protectedRoutes.Post("/", h.HandleCreateAlbum)
	protectedRoutes.Put("/:id", h.HandleUpdateAlbum)
	protectedRoutes.Delete("/:id", h.HandleDeleteAlbum)
	protectedRoutes.Post("/:albumId/purchase", h.HandlePurchaseAlbum)
	protectedRoutes.Post("/:albumId/tags", h.HandleAddTag)
	protectedRoutes.Delete("/:albumId/tags/:tagId", h.HandleRemoveTag)
	protectedRoutes.Post("/:albumId/reviews", h.HandleAddReview)
	protectedRoutes.Delete("/:albumId/reviews/:reviewId", h.HandleDeleteReview)
	protectedRoutes.Post("/:albumId/tracks", h.HandleAddTrack)
	protectedRoutes.Delete("/:albumId/tracks/:position", h.HandleRemoveTrack)
	protectedRoutes.Put("/:albumId/tracks/:currentPosition/move/:newPosition", h.HandleMoveTrack)

	router.Delete("/tags/:id", h.HandleDeleteTag)
}

// HandleGetAlbums retrieves all albums as brief views.
func (h *AlbumHandler) HandleGetAlbums(c *fiber.Ctx) error {
	albums, err := h.service.GetAllAlbums()
	if err != nil {
		log.Printf("Error getting all albums: %v", err)
		return handleError(c, err)
	}
	return c.JSON(albums)
}

// HandleGetAlbumByID retrieves the full view of a single album.
func (h *AlbumHandler) HandleGetAlbumByID(c *fiber.Ctx) error {
	album, err := h.service.GetAlbumByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(album)
}

// AlbumRequest represents the request body for creating or updating an
// album.
type AlbumRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	CoverURL    string    `json:"cover_url" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	ReleaseDate time.Time `json:"release_date"`
}

// HandleCreateAlbum publishes a new album under the caller's artist
// profile. Artists and admins only.
func (h *AlbumHandler) HandleCreateAlbum(c *fiber.Ctx) error {
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.HasAnyRole(identity, models.RoleArtist, models.RoleAdmin) {
		return forbidden(c)
	}

	var req AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	album, err := h.service.CreateAlbum(identity, services.AlbumUpdate{
		Title:       req.Title,
		CoverURL:    req.CoverURL,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		log.Printf("Error creating album for %s: %v", identity.Username, err)
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(album)
}

// HandleUpdateAlbum updates an album. Owner or admin only.
func (h *AlbumHandler) HandleUpdateAlbum(c *fiber.Ctx) error {
	albumID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	var req AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	album, err := h.service.UpdateAlbum(albumID, services.AlbumUpdate{
		Title:       req.Title,
		CoverURL:    req.CoverURL,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(album)
}

// HandleDeleteAlbum removes an album and its tracks. Owner or admin only.
func (h *AlbumHandler) HandleDeleteAlbum(c *fiber.Ctx) error {
	albumID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	if err := h.service.DeleteAlbum(albumID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePurchaseAlbum executes the purchase transaction for the caller.
func (h *AlbumHandler) HandlePurchaseAlbum(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.CanPurchaseAlbum(identity) {
		return forbidden(c)
	}

	purchase, err := h.service.PurchaseAlbum(identity, albumID)
	if err != nil {
		log.Printf("Error purchasing album %s for %s: %v", albumID, identity.Username, err)
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// TagRequest represents the request body for attaching a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// HandleAddTag attaches a tag to an album. Owner or admin only.
func (h *AlbumHandler) HandleAddTag(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	var req TagRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	link, err := h.service.AddTagToAlbum(albumID, req.Name)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleRemoveTag detaches a tag from an album. Owner or admin only.
func (h *AlbumHandler) HandleRemoveTag(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	if err := h.service.RemoveTagFromAlbum(albumID, c.Params("tagId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetTags lists every tag known to the catalog.
func (h *AlbumHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.service.GetAllTags()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(tags)
}

// HandleDeleteTag removes a tag entirely. Admins only.
func (h *AlbumHandler) HandleDeleteTag(c *fiber.Ctx) error {
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.HasAnyRole(identity, models.RoleAdmin) {
		return forbidden(c)
	}

	if err := h.service.DeleteTag(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetReviews lists an album's reviews.
func (h *AlbumHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetReviewsForAlbum(c.Params("albumId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

// ReviewRequest represents the request body for a new review.
type ReviewRequest struct {
	Text           string `json:"text" validate:"required,min=1,max=5000"`
	FavoriteTracks string `json:"favorite_tracks" validate:"omitempty,max=1000"`
}

// HandleAddReview attaches the caller's review to an album.
func (h *AlbumHandler) HandleAddReview(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.CanWriteReview(identity) {
		return forbidden(c)
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	review, err := h.service.AddReviewToAlbum(identity, albumID, services.ReviewCreate{
		Text:           req.Text,
		FavoriteTracks: req.FavoriteTracks,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleDeleteReview removes a review. The service enforces that only the
// review's author or an admin may do this.
func (h *AlbumHandler) HandleDeleteReview(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	if err := h.service.DeleteReview(identity, c.Params("albumId"), c.Params("reviewId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetTracks lists an album's tracks sorted by position.
func (h *AlbumHandler) HandleGetTracks(c *fiber.Ctx) error {
	tracks, err := h.service.GetTracksForAlbum(c.Params("albumId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(tracks)
}

// TrackRequest represents the request body for a new track.
type TrackRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	DurationSec int    `json:"duration_sec" validate:"gte=0"`
	AudioURL    string `json:"audio_url" validate:"omitempty,max=500"`
}

// HandleAddTrack appends a track to the end of an album. Owner or admin
// only.
func (h *AlbumHandler) HandleAddTrack(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	track, err := h.service.AddTrackToAlbum(albumID, services.TrackCreate{
		Title:       req.Title,
		DurationSec: req.DurationSec,
		AudioURL:    req.AudioURL,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(track)
}

// HandleRemoveTrack deletes the track at a position and renumbers the
// rest. Owner or admin only. Responds with the remaining tracks in order.
func (h *AlbumHandler) HandleRemoveTrack(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	position, err := c.ParamsInt("position")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "track position must be an integer",
			"code":    "invalid_position",
		})
	}

	tracks, err := h.service.RemoveTrackFromAlbum(albumID, position)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(tracks)
}

// HandleMoveTrack moves a track between positions. Owner or admin only.
// Responds with the album's tracks in their new order.
func (h *AlbumHandler) HandleMoveTrack(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsAlbumOwner(identity, albumID) {
		return forbidden(c)
	}

	currentPos, err := c.ParamsInt("currentPosition")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "track position must be an integer",
			"code":    "invalid_position",
		})
	}
	newPos, err := c.ParamsInt("newPosition")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "track position must be an integer",
			"code":    "invalid_position",
		})
	}

	tracks, err := h.service.MoveTrackPosition(albumID, currentPos, newPos)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(tracks)
}
