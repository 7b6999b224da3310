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

// AlbumBrief is the list view of an album.
type AlbumBrief struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	CoverURL         string `json:"cover_url"`
	ArtistID         string `json:"artist_id"`
	ArtistName       string `json:"artist_name"`
	TrackCount       int    `json:"track_count"`
	TotalDurationSec int    `json:"total_duration_sec"`
}

// AlbumDetail is the single-album view with tracks and tags resolved.
type AlbumDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	CoverURL    string         `json:"cover_url"`
	Price       float64        `json:"price"`
	ReleaseDate time.Time      `json:"release_date"`
	ArtistID    string         `json:"artist_id"`
	ArtistName  string         `json:"artist_name"`
	Tracks      []models.Track `json:"tracks"`
	Tags        []models.Tag   `json:"tags"`
}

// AlbumUpdate carries the mutable album fields.
type AlbumUpdate struct {
	Title       string
	CoverURL    string
	Price       float64
	ReleaseDate time.Time
}

// TrackCreate carries the fields for a new track. Position is assigned by
// the service, always at the end of the album.
type TrackCreate struct {
	Title       string
	DurationSec int
	AudioURL    string
}

// ReviewCreate carries the fields for a new review.
type ReviewCreate struct {
	Text           string
	FavoriteTracks string
}

// AlbumService handles business logic related to albums: catalog views,
// the purchase transaction, track ordering, tags and reviews.
type AlbumService struct {
	repos  *repositories.Repositories
	tx     repositories.TxManager
	events EventPublisher
}

// NewAlbumService creates a new AlbumService.
func NewAlbumService(repos *repositories.Repositories, tx repositories.TxManager, events EventPublisher) *AlbumService {
	return &AlbumService{
		repos:  repos,
		tx:     tx,
		events: events,
	}
}

// briefForAlbum assembles the list view for one album. The artist may be
// passed in when the caller already resolved it; nil triggers a lookup.
func (s *AlbumService) briefForAlbum(album *models.Album, artist *models.Artist) (*AlbumBrief, error) {
	if artist == nil {
		var err error
		artist, err = s.repos.Artists.GetByID(album.ArtistID)
		if err != nil {
			return nil, err
		}
	}

	tracks, err := s.repos.Tracks.GetByAlbumID(album.ID)
	if err != nil {
		return nil, err
	}
	totalDuration := 0
	for _, track := range tracks {
		totalDuration += track.DurationSec
	}

	return &AlbumBrief{
		ID:               album.ID,
		Title:            album.Title,
		CoverURL:         album.CoverURL,
		ArtistID:         artist.ID,
		ArtistName:       artist.Name,
		TrackCount:       len(tracks),
		TotalDurationSec: totalDuration,
	}, nil
}

// detailForAlbum assembles the full view for one album.
func (s *AlbumService) detailForAlbum(album *models.Album) (*AlbumDetail, error) {
	artist, err := s.repos.Artists.GetByID(album.ArtistID)
	if err != nil {
		return nil, err
	}

	tracks, err := s.repos.Tracks.GetByAlbumID(album.ID)
	if err != nil {
		return nil, err
	}

	links, err := s.repos.AlbumTags.GetByAlbumID(album.ID)
	if err != nil {
		return nil, err
	}
	tags := make([]models.Tag, 0, len(links))
	for _, link := range links {
		tag, err := s.repos.Tags.GetByID(link.TagID)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return &AlbumDetail{
		ID:          album.ID,
		Title:       album.Title,
		CoverURL:    album.CoverURL,
		Price:       album.Price,
		ReleaseDate: album.ReleaseDate,
		ArtistID:    artist.ID,
		ArtistName:  artist.Name,
		Tracks:      tracks,
		Tags:        tags,
	}, nil
}

// GetAllAlbums lists every album as a brief view.
func (s *AlbumService) GetAllAlbums() ([]AlbumBrief, error) {
	albums, err := s.repos.Albums.GetAll()
	if err != nil {
		return nil, err
	}

	briefs := make([]AlbumBrief, 0, len(albums))
	for i := range albums {
		brief, err := s.briefForAlbum(&albums[i], nil)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, *brief)
	}
	return briefs, nil
}

// GetAlbumByID retrieves the full view of one album.
func (s *AlbumService) GetAlbumByID(id string) (*AlbumDetail, error) {
	album, err := s.repos.Albums.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.detailForAlbum(album)
}

// CreateAlbum publishes a new album under the caller's artist profile.
func (s *AlbumService) CreateAlbum(identity authz.Identity, update AlbumUpdate) (*AlbumDetail, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	artist, err := s.repos.Artists.GetByUserID(user.ID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.BadRequest("no_artist_profile", "user does not have an artist profile")
		}
		return nil, err
	}

	album := &models.Album{
		ArtistID:    artist.ID,
		Title:       update.Title,
		CoverURL:    update.CoverURL,
		Price:       update.Price,
		ReleaseDate: update.ReleaseDate,
	}
	if err := s.repos.Albums.Create(album); err != nil {
		return nil, err
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"album_id":  album.ID,
			"artist_id": album.ArtistID,
			"title":     album.Title,
		}
		if err := s.events.Publish(EventAlbumPublished, payload); err != nil {
			log.Printf("Warning: failed to publish album published event for %s: %v", album.ID, err)
		}
	}

	return s.detailForAlbum(album)
}

// UpdateAlbum updates an existing album.
func (s *AlbumService) UpdateAlbum(id string, update AlbumUpdate) (*AlbumDetail, error) {
	album, err := s.repos.Albums.GetByID(id)
	if err != nil {
		return nil, err
	}

	album.Title = update.Title
	album.CoverURL = update.CoverURL
	album.Price = update.Price
	album.ReleaseDate = update.ReleaseDate

	if err := s.repos.Albums.Update(album); err != nil {
		return nil, err
	}
	return s.detailForAlbum(album)
}

// DeleteAlbum deletes an album and its tracks in one transaction.
func (s *AlbumService) DeleteAlbum(id string) error {
	return s.tx.Do(func(r *repositories.Repositories) error {
		if _, err := r.Albums.GetByID(id); err != nil {
			return err
		}
		if err := r.Tracks.DeleteByAlbumID(id); err != nil {
			return err
		}
		return r.Albums.Delete(id)
	})
}

// PurchaseAlbum executes an atomic album purchase: debit the buyer, credit
// the album's owning artist and insert the purchase record. The checks run
// strictly before any mutation; if any fails the state is unchanged.
func (s *AlbumService) PurchaseAlbum(identity authz.Identity, albumID string) (*models.Purchase, error) {
	var purchase *models.Purchase
	err := s.tx.Do(func(r *repositories.Repositories) error {
		buyer, err := r.Users.GetByUsername(identity.Username)
		if err != nil {
			return err
		}

		album, err := r.Albums.GetByID(albumID)
		if err != nil {
			return err
		}

		existing, err := r.Purchases.GetByUserAndAlbum(buyer.ID, album.ID)
		if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("purchase_exists", "album already purchased")
		}

		if album.Price > buyer.Balance {
			return apperrors.PaymentRequired("insufficient_balance", "not enough money for payment")
		}

		artist, err := r.Artists.GetByID(album.ArtistID)
		if err != nil {
			return err
		}
		owner, err := r.Users.GetByID(artist.UserID)
		if err != nil {
			return err
		}
		if owner.ID == buyer.ID {
			return apperrors.BadRequest("own_album", "cannot buy own album")
		}

		buyer.Balance -= album.Price
		owner.Balance += album.Price

		if err := r.Users.Update(owner); err != nil {
			return err
		}
		if err := r.Users.Update(buyer); err != nil {
			return err
		}

		purchase = &models.Purchase{
			UserID:      buyer.ID,
			AlbumID:     album.ID,
			Amount:      album.Price,
			PurchasedAt: time.Now(),
		}
		return r.Purchases.Create(purchase)
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"purchase_id": purchase.ID,
			"user_id":     purchase.UserID,
			"album_id":    purchase.AlbumID,
			"amount":      purchase.Amount,
		}
		if err := s.events.Publish(EventPurchaseCompleted, payload); err != nil {
			log.Printf("Warning: failed to publish purchase completed event for %s: %v", purchase.ID, err)
		}
	}

	return purchase, nil
}

// AddTagToAlbum attaches a tag to an album, creating the tag by name if it
// does not exist yet. Attaching the same tag twice is a conflict.
func (s *AlbumService) AddTagToAlbum(albumID, tagName string) (*models.AlbumTag, error) {
	var link *models.AlbumTag
	err := s.tx.Do(func(r *repositories.Repositories) error {
		album, err := r.Albums.GetByID(albumID)
		if err != nil {
			return err
		}

		tag, err := r.Tags.GetByName(tagName)
		if err != nil {
			if !apperrors.IsKind(err, apperrors.KindNotFound) {
				return err
			}
			tag = &models.Tag{Name: tagName}
			if err := r.Tags.Create(tag); err != nil {
				return err
			}
		}

		existing, err := r.AlbumTags.GetByAlbumAndTag(album.ID, tag.ID)
		if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("album_tag_exists", fmt.Sprintf("album already tagged with '%s'", tagName))
		}

		link = &models.AlbumTag{
			AlbumID:   album.ID,
			TagID:     tag.ID,
			CreatedAt: time.Now(),
		}
		return r.AlbumTags.Create(link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveTagFromAlbum detaches a tag from an album.
func (s *AlbumService) RemoveTagFromAlbum(albumID, tagID string) error {
	link, err := s.repos.AlbumTags.GetByAlbumAndTag(albumID, tagID)
	if err != nil {
		return err
	}
	return s.repos.AlbumTags.Delete(link.ID)
}

// GetAllTags lists every tag in the catalog.
func (s *AlbumService) GetAllTags() ([]models.Tag, error) {
	return s.repos.Tags.GetAll()
}

// DeleteTag removes a tag from the catalog entirely, detaching it from
// every album that carried it.
func (s *AlbumService) DeleteTag(id string) error {
	return s.tx.Do(func(r *repositories.Repositories) error {
		if _, err := r.Tags.GetByID(id); err != nil {
			return err
		}
		if err := r.AlbumTags.DeleteByTagID(id); err != nil {
			return err
		}
		return r.Tags.Delete(id)
	})
}

// DeleteReview removes a review from an album. Only the review's author or
// an admin may do this.
func (s *AlbumService) DeleteReview(identity authz.Identity, albumID, reviewID string) error {
	review, err := s.repos.Reviews.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review.AlbumID != albumID {
		return apperrors.NotFound("review_not_found", fmt.Sprintf("review with ID %s not found", reviewID))
	}

	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return err
	}
	if review.UserID != user.ID && identity.Role != models.RoleAdmin {
		return apperrors.AccessDenied("not_review_author", "only the review's author may delete it")
	}

	return s.repos.Reviews.Delete(review.ID)
}

// GetReviewsForAlbum lists the album's reviews.
func (s *AlbumService) GetReviewsForAlbum(albumID string) ([]models.Review, error) {
	if _, err := s.repos.Albums.GetByID(albumID); err != nil {
		return nil, err
	}
	return s.repos.Reviews.GetByAlbumID(albumID)
}

// AddReviewToAlbum attaches a review by the caller to an album.
func (s *AlbumService) AddReviewToAlbum(identity authz.Identity, albumID string, create ReviewCreate) (*models.Review, error) {
	album, err := s.repos.Albums.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		AlbumID:        album.ID,
		UserID:         user.ID,
		Text:           create.Text,
		FavoriteTracks: create.FavoriteTracks,
		CreatedAt:      time.Now(),
	}
	if err := s.repos.Reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetTracksForAlbum lists the album's tracks sorted ascending by position.
func (s *AlbumService) GetTracksForAlbum(albumID string) ([]models.Track, error) {
	if _, err := s.repos.Albums.GetByID(albumID); err != nil {
		return nil, err
	}
	return s.repos.Tracks.GetByAlbumID(albumID)
}

// AddTrackToAlbum appends a new track at position trackCount+1.
func (s *AlbumService) AddTrackToAlbum(albumID string, create TrackCreate) (*models.Track, error) {
	var track *models.Track
	err := s.tx.Do(func(r *repositories.Repositories) error {
		album, err := r.Albums.GetByID(albumID)
		if err != nil {
			return err
		}

		count, err := r.Tracks.CountByAlbumID(album.ID)
		if err != nil {
			return err
		}

		track = &models.Track{
			AlbumID:     album.ID,
			Title:       create.Title,
			DurationSec: create.DurationSec,
			Position:    count + 1,
			AudioURL:    create.AudioURL,
		}
		return r.Tracks.Create(track)
	})
	if err != nil {
		return nil, err
	}
	return track, nil
}

// RemoveTrackFromAlbum deletes the track at the given position and closes
// the gap by decrementing every later position, all in one transaction.
// Returns the remaining tracks sorted by position.
func (s *AlbumService) RemoveTrackFromAlbum(albumID string, position int) ([]models.Track, error) {
	var tracks []models.Track
	err := s.tx.Do(func(r *repositories.Repositories) error {
		if _, err := r.Albums.GetByID(albumID); err != nil {
			return err
		}

		track, err := r.Tracks.GetByAlbumIDAndPosition(albumID, position)
		if err != nil {
			return err
		}
		if err := r.Tracks.Delete(track.ID); err != nil {
			return err
		}

		remaining, err := r.Tracks.GetByAlbumID(albumID)
		if err != nil {
			return err
		}
		for i := range remaining {
			if remaining[i].Position > position {
				remaining[i].Position--
				if err := r.Tracks.Update(&remaining[i]); err != nil {
					return err
				}
			}
		}

		tracks, err = r.Tracks.GetByAlbumID(albumID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// MoveTrackPosition moves the track at currentPos to newPos, shifting the
// tracks in between by one so positions stay contiguous. All position
// writes commit as one transaction. Returns the tracks sorted by position.
func (s *AlbumService) MoveTrackPosition(albumID string, currentPos, newPos int) ([]models.Track, error) {
	var tracks []models.Track
	err := s.tx.Do(func(r *repositories.Repositories) error {
		if _, err := r.Albums.GetByID(albumID); err != nil {
			return err
		}

		all, err := r.Tracks.GetByAlbumID(albumID)
		if err != nil {
			return err
		}

		count := len(all)
		if currentPos < 1 || currentPos > count || newPos < 1 || newPos > count {
			return apperrors.BadRequest("invalid_position", "invalid track position")
		}
		if currentPos == newPos {
			tracks = all
			return nil
		}

		var moved *models.Track
		for i := range all {
			pos := all[i].Position
			switch {
			case pos == currentPos:
				moved = &all[i]
			case currentPos < newPos && pos > currentPos && pos <= newPos:
				// Moving later: tracks in (currentPos, newPos] shift down
				all[i].Position = pos - 1
				if err := r.Tracks.Update(&all[i]); err != nil {
					return err
				}
			case currentPos > newPos && pos >= newPos && pos < currentPos:
				// Moving earlier: tracks in [newPos, currentPos) shift up
				all[i].Position = pos + 1
				if err := r.Tracks.Update(&all[i]); err != nil {
					return err
				}
			}
		}
		if moved == nil {
			return apperrors.NotFound("track_not_found", fmt.Sprintf("track at position %d not found", currentPos))
		}

		moved.Position = newPos
		if err := r.Tracks.Update(moved); err != nil {
			return err
		}

		tracks, err = r.Tracks.GetByAlbumID(albumID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
