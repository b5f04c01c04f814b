// Package services holds the server's business logic between the HTTP
// layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/dbx"
	"github.com/aigymlabs/fitcoach/internal/logging"
	"github.com/aigymlabs/fitcoach/internal/server/models"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/users"
)

type UserService struct {
	db    *sql.DB
	users users.Factory
	log   logging.Logger
}

// NewUserService builds the account service. repoFor binds the user
// repository to a query handle; read-modify-write operations bind it to
// a transaction so concurrent changes cannot interleave.
func NewUserService(db *sql.DB, repoFor users.Factory, log logging.Logger) *UserService {
	return &UserService{db: db, users: repoFor, log: log}
}

// RegisterRequest carries a new account with its initial profile. All
// fields except PreferredCuisines are required.
type RegisterRequest struct {
	Username          string
	Password          string
	Gender            string
	Age               int
	HeightCm          float64
	WeightKg          float64
	DietPreference    string
	ActivityLevel     string
	Goals             string
	PreferredCuisines string
}

// ProfileUpdate is a partial profile change. Nil fields keep their
// current value.
type ProfileUpdate struct {
	Gender            *string
	Age               *int
	HeightCm          *float64
	WeightKg          *float64
	DietPreference    *string
	ActivityLevel     *string
	Goals             *string
	PreferredCuisines *string
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
}

func validateAge(age int) error {
	if age < 12 || age > 120 {
		return validationError("Age must be between 12 and 120.")
	}
	return nil
}

func validateHeight(height float64) error {
	if height < 50 || height > 300 {
		return validationError("Height must be between 50 and 300 cm.")
	}
	return nil
}

func validateWeight(weight float64) error {
	if weight < 20 || weight > 500 {
		return validationError("Weight must be between 20 and 500 kg.")
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, req RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)

	var missing []string
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"username", req.Username == ""},
		{"password", req.Password == ""},
		{"gender", req.Gender == ""},
		{"age", req.Age == 0},
		{"height", req.HeightCm == 0},
		{"weight", req.WeightKg == 0},
		{"diet_preference", req.DietPreference == ""},
		{"activity_level", req.ActivityLevel == ""},
		{"goals", req.Goals == ""},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return validationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	if err := validateAge(req.Age); err != nil {
		return err
	}
	if err := validateHeight(req.HeightCm); err != nil {
		return err
	}
	if err := validateWeight(req.WeightKg); err != nil {
		return err
	}
	if len(req.Password) < 6 {
		return validationError("Password must be at least 6 characters long.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.users(s.db).Create(ctx, &models.User{
		Username:          req.Username,
		PasswordHash:      string(hash),
		Gender:            req.Gender,
		Age:               req.Age,
		HeightCm:          req.HeightCm,
		WeightKg:          req.WeightKg,
		DietPreference:    req.DietPreference,
		ActivityLevel:     req.ActivityLevel,
		Goals:             req.Goals,
		PreferredCuisines: strings.TrimSpace(req.PreferredCuisines),
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user registered", "username", req.Username)
	return nil
}

// Login checks the credentials and returns the account. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn(ctx, "failed login attempt", "username", username)
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users(s.db).GetByID(ctx, userID)
}

// UpdateProfile applies a partial change and returns the updated account.
// The read and the write run in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*models.User, error) {
	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.users(tx)

		u, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := applyProfileUpdate(u, upd); err != nil {
			return err
		}
		if err := repo.UpdateProfile(ctx, u); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user profile updated", "username", user.Username)
	return user, nil
}

func applyProfileUpdate(user *models.User, upd ProfileUpdate) error {
	if upd.Age != nil {
		if err := validateAge(*upd.Age); err != nil {
			return err
		}
		user.Age = *upd.Age
	}
	// Unknown gender values are ignored rather than rejected.
	if upd.Gender != nil {
		switch *upd.Gender {
		case "male", "female", "other":
			user.Gender = *upd.Gender
		}
	}
	if upd.HeightCm != nil {
		if err := validateHeight(*upd.HeightCm); err != nil {
			return err
		}
		user.HeightCm = *upd.HeightCm
	}
	if upd.WeightKg != nil {
		if err := validateWeight(*upd.WeightKg); err != nil {
			return err
		}
		user.WeightKg = *upd.WeightKg
	}
	if upd.DietPreference != nil {
		user.DietPreference = *upd.DietPreference
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
	}
	if upd.Goals != nil {
		user.Goals = *upd.Goals
	}
	if upd.PreferredCuisines != nil {
		user.PreferredCuisines = strings.TrimSpace(*upd.PreferredCuisines)
	}
	return nil
}

// EnsureAdmin creates or promotes the administrator account configured
// at startup. A fresh account gets a neutral placeholder profile. The
// lookup and the create-or-promote step run in one transaction.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	var created bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.users(tx)

		user, err := repo.GetByUsername(ctx, username)
		if err == nil {
			if user.IsAdmin {
				return nil
			}
			return repo.SetAdmin(ctx, user.ID, true)
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		_, err = repo.Create(ctx, &models.User{
			Username:       username,
			PasswordHash:   string(hash),
			Gender:         "other",
			Age:            30,
			HeightCm:       160,
			WeightKg:       60,
			DietPreference: "any",
			ActivityLevel:  "moderate",
			Goals:          "maintenance",
			IsAdmin:        true,
		})
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return err
	}
	if created {
		s.log.Info(ctx, "admin account created", "username", username)
	}
	return nil
}
