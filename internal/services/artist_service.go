package services

import (
	"fmt"
	"log"
	"time"

	"musicstore/internal/apperrors"
	"musicstore/internal/authz"
	"musicstore/internal/models"
	"musicstore/internal/repositories"
)

// ArtistUpdate carries the mutable artist profile fields.
type ArtistUpdate struct {
	Name     string
	Bio      string
	PhotoURL string
}

// ArtistCreated is returned by CreateArtist. Creating a profile promotes
// the owning user to the ARTIST role, so a fresh token carrying the new
// role is issued alongside the profile.
type ArtistCreated struct {
	Artist   *models.Artist `json:"artist"`
	Token    string         `json:"token"`
	Username string         `json:"username"`
	Role     string         `json:"role"`
}

// ArtistService handles business logic related to artist profiles and
// subscriptions.
type ArtistService struct {
	repos        *repositories.Repositories
	tx           repositories.TxManager
	authService  *AuthService
	albumService *AlbumService
	events       EventPublisher
}

// NewArtistService creates a new ArtistService.
func NewArtistService(repos *repositories.Repositories, tx repositories.TxManager, authService *AuthService, albumService *AlbumService, events EventPublisher) *ArtistService {
	return &ArtistService{
		repos:        repos,
		tx:           tx,
		authService:  authService,
		albumService: albumService,
		events:       events,
	}
}

// GetAllArtists retrieves all artist profiles.
func (s *ArtistService) GetAllArtists() ([]models.Artist, error) {
	return s.repos.Artists.GetAll()
}

// GetArtistByID retrieves a single artist profile by its ID.
func (s *ArtistService) GetArtistByID(id string) (*models.Artist, error) {
	return s.repos.Artists.GetByID(id)
}

// CreateArtist creates an artist profile for the caller and promotes them
// to the ARTIST role, both inside one transaction. A user may own at most
// one profile.
func (s *ArtistService) CreateArtist(identity authz.Identity, update ArtistUpdate) (*ArtistCreated, error) {
	var created ArtistCreated
	err := s.tx.Do(func(r *repositories.Repositories) error {
		user, err := r.Users.GetByUsername(identity.Username)
		if err != nil {
			return err
		}

		exists, err := r.Artists.ExistsByUserID(user.ID)
		if err != nil {
			return fmt.Errorf("failed to check artist profile: %w", err)
		}
		if exists {
			return apperrors.Conflict("artist_profile_exists", "user already has an artist profile")
		}

		artist := &models.Artist{
			UserID:   user.ID,
			Name:     update.Name,
			Bio:      update.Bio,
			PhotoURL: update.PhotoURL,
		}
		if err := r.Artists.Create(artist); err != nil {
			return err
		}

		user.Role = models.RoleArtist
		if err := r.Users.Update(user); err != nil {
			return err
		}

		token, err := s.authService.TokenForUser(user)
		if err != nil {
			return err
		}

		created = ArtistCreated{
			Artist:   artist,
			Token:    token,
			Username: user.Username,
			Role:     user.Role,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateArtist updates an existing artist profile.
func (s *ArtistService) UpdateArtist(id string, update ArtistUpdate) (*models.Artist, error) {
	artist, err := s.repos.Artists.GetByID(id)
	if err != nil {
		return nil, err
	}

	artist.Name = update.Name
	artist.Bio = update.Bio
	artist.PhotoURL = update.PhotoURL

	if err := s.repos.Artists.Update(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// DeleteArtist deletes an artist profile by its ID.
func (s *ArtistService) DeleteArtist(id string) error {
	return s.repos.Artists.Delete(id)
}

// GetArtistAlbums lists the artist's albums as brief views.
func (s *ArtistService) GetArtistAlbums(artistID string) ([]AlbumBrief, error) {
	artist, err := s.repos.Artists.GetByID(artistID)
	if err != nil {
		return nil, err
	}

	albums, err := s.repos.Albums.GetByArtistID(artist.ID)
	if err != nil {
		return nil, err
	}

	briefs := make([]AlbumBrief, 0, len(albums))
	for i := range albums {
		brief, err := s.albumService.briefForAlbum(&albums[i], artist)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, *brief)
	}
	return briefs, nil
}

// GetArtistSubscribers lists the subscriptions held against the artist.
func (s *ArtistService) GetArtistSubscribers(artistID string) ([]models.Subscription, error) {
	if _, err := s.repos.Artists.GetByID(artistID); err != nil {
		return nil, err
	}
	return s.repos.Subscriptions.GetByArtistID(artistID)
}

// Subscribe subscribes the caller to an artist. Subscribing to the artist
// profile the caller owns is rejected, as is a duplicate subscription.
func (s *ArtistService) Subscribe(identity authz.Identity, artistID string) (*models.Subscription, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	artist, err := s.repos.Artists.GetByID(artistID)
	if err != nil {
		return nil, err
	}

	if artist.UserID == user.ID {
		return nil, apperrors.BadRequest("self_subscribe", "cannot subscribe to yourself")
	}

	exists, err := s.repos.Subscriptions.ExistsByUserAndArtist(user.ID, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("subscription_exists", "already subscribed to this artist")
	}

	subscription := &models.Subscription{
		UserID:    user.ID,
		ArtistID:  artist.ID,
		CreatedAt: time.Now(),
	}
	if err := s.repos.Subscriptions.Create(subscription); err != nil {
		return nil, err
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"subscription_id": subscription.ID,
			"user_id":         subscription.UserID,
			"artist_id":       subscription.ArtistID,
		}
		if err := s.events.Publish(EventSubscriptionCreated, payload); err != nil {
			log.Printf("Warning: failed to publish subscription created event for %s: %v", subscription.ID, err)
		}
	}

	return subscription, nil
}

// Unsubscribe removes the caller's subscription to an artist. A later
// resubscribe is allowed and creates a fresh row.
func (s *ArtistService) Unsubscribe(identity authz.Identity, artistID string) error {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return err
	}

	if _, err := s.repos.Artists.GetByID(artistID); err != nil {
		return err
	}

	subscription, err := s.repos.Subscriptions.GetByUserAndArtist(user.ID, artistID)
	if err != nil {
		return err
	}

	return s.repos.Subscriptions.Delete(subscription.ID)
}
