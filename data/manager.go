package data

import (
	"errors"
	"time"

	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

// ProfileManager wraps a ProfileService with an in-memory view of the
// loaded profiles.
type ProfileManager struct {
	ProfileService storage.ProfileService

	Profiles []models.Profile
}

func NewProfileManager(profileService storage.ProfileService) *ProfileManager {
	return &ProfileManager{
		ProfileService: profileService,
	}
}

func (m *ProfileManager) Init() error {
	profiles, _, err := m.ProfileService.List(storage.ProfileListOptions{})
	if err != nil {
		return err
	}
	m.Profiles = profiles
	return nil
}

func (m *ProfileManager) Get(name string) (*models.Profile, error) {
	return m.ProfileService.Get(name)
}

func (m *ProfileManager) Add(profile models.Profile) (int64, error) {
	if profile.CreateTime.IsZero() {
		profile.CreateTime = time.Now()
	}
	if profile.UpdateTime.IsZero() {
		profile.UpdateTime = time.Now()
	}
	id, err := m.ProfileService.Add(profile)
	if err != nil {
		return 0, err
	}
	profile.ID = id
	m.Profiles = append(m.Profiles, profile)
	return id, nil
}

func (m *ProfileManager) Update(name string, update models.ProfileOptional) error {
	if update.UpdateTime == nil {
		t := time.Now()
		update.UpdateTime = &t
	}
	err := m.ProfileService.Update(name, update)
	if err != nil {
		return err
	}
	for i := range m.Profiles {
		if m.Profiles[i].Name == name {
			m.Profiles[i].Update(&update)
		}
	}
	return nil
}

func (m *ProfileManager) Delete(name string) error {
	err := m.ProfileService.Delete(name)
	if err != nil {
		return err
	}
	for i := range m.Profiles {
		if m.Profiles[i].Name == name {
			m.Profiles = append(m.Profiles[:i], m.Profiles[i+1:]...)
			break
		}
	}
	return nil
}

// Save stores a profile under its name, overwriting an existing
// profile of the same name.
func (m *ProfileManager) Save(profile models.Profile) error {
	_, err := m.ProfileService.Get(profile.Name)
	if err == nil {
		return m.Update(profile.Name, models.ProfileOptional{
			Text:       &profile.Text,
			Preset:     &profile.Preset,
			By:         &profile.By,
			Delay:      &profile.Delay,
			ExitDelay:  &profile.ExitDelay,
			Duration:   &profile.Duration,
			Stagger:    &profile.Stagger,
			Once:       &profile.Once,
			Loop:       &profile.Loop,
			FPS:        &profile.FPS,
			Color:      &profile.Color,
			Background: &profile.Background,
		})
	}
	if !errors.Is(err, storage.ErrProfileNotFound) {
		return err
	}
	_, err = m.Add(profile)
	return err
}
