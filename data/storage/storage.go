package storage

import (
	"errors"

	"github.com/xhd2015/text-animate/models"
)

// ErrProfileNotFound is returned when no profile exists under the
// requested name.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileListOptions struct {
	Filter    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type ProfileService interface {
	List(options ProfileListOptions) ([]models.Profile, int64, error)
	Get(name string) (*models.Profile, error)
	Add(profile models.Profile) (int64, error)
	Update(name string, update models.ProfileOptional) error
	Delete(name string) error
}
