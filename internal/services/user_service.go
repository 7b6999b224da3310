package services

import (
	"fmt"

	"musicstore/internal/apperrors"
	"musicstore/internal/authz"
	"musicstore/internal/models"
	"musicstore/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate carries the mutable account fields.
type ProfileUpdate struct {
	Username string
	Email    string
}

// PasswordChange carries a password change request. The current password
// must verify against the stored hash before the new one is accepted.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}

// UserInfo is the caller-facing account view returned by GetUserInfo.
type UserInfo struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
	IsArtist bool    `json:"is_artist"`
}

// UserService handles business logic related to user accounts.
type UserService struct {
	repos *repositories.Repositories
}

// NewUserService creates a new UserService.
func NewUserService(repos *repositories.Repositories) *UserService {
	return &UserService{
		repos: repos,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repos.Users.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repos.Users.GetByID(id)
}

// GetUserInfo resolves the caller's own account view, including whether
// an artist profile exists for them.
func (s *UserService) GetUserInfo(identity authz.Identity) (*UserInfo, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	isArtist, err := s.repos.Artists.ExistsByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check artist profile: %w", err)
	}

	return &UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Balance:  user.Balance,
		IsArtist: isArtist,
	}, nil
}

// GetUserByEmail retrieves a single user by their email address.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.repos.Users.GetByEmail(email)
}

// DeleteUser deletes a user account by its ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repos.Users.Delete(id)
}

// UpdateProfile updates a user's username and email, re-checking
// uniqueness for any value that actually changes.
func (s *UserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.repos.Users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != "" && update.Username != user.Username {
		taken, err := s.repos.Users.ExistsByUsername(update.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, apperrors.Conflict("username_taken", fmt.Sprintf("username '%s' already taken", update.Username))
		}
		user.Username = update.Username
	}
	if update.Email != "" && update.Email != user.Email {
		registered, err := s.repos.Users.ExistsByEmail(update.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if registered {
			return nil, apperrors.Conflict("email_taken", fmt.Sprintf("email '%s' already registered", update.Email))
		}
		user.Email = update.Email
	}

	if err := s.repos.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a bcrypt hash of
// the new one.
func (s *UserService) ChangePassword(id string, change PasswordChange) (*models.User, error) {
	if change.NewPassword != change.Confirmation {
		return nil, apperrors.BadRequest("password_mismatch", "new password and confirmation do not match")
	}

	user, err := s.repos.Users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(change.CurrentPassword)); err != nil {
		return nil, apperrors.BadRequest("wrong_password", "current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.repos.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddBalance tops up the caller's balance by a positive amount.
func (s *UserService) AddBalance(identity authz.Identity, amount float64) (*models.User, error) {
	if amount <= 0 {
		return nil, apperrors.BadRequest("invalid_amount", "amount must be positive")
	}

	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	user.Balance += amount
	if err := s.repos.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserPurchases lists the caller's purchases.
func (s *UserService) GetUserPurchases(identity authz.Identity) ([]models.Purchase, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}
	return s.repos.Purchases.GetByUserID(user.ID)
}

// GetUserReviews lists the reviews written by the caller.
func (s *UserService) GetUserReviews(identity authz.Identity) ([]models.Review, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}
	return s.repos.Reviews.GetByUserID(user.ID)
}

// GetUserSubscriptions lists the artists the caller is subscribed to.
func (s *UserService) GetUserSubscriptions(identity authz.Identity) ([]models.Subscription, error) {
	user, err := s.repos.Users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}
	return s.repos.Subscriptions.GetByUserID(user.ID)
}
