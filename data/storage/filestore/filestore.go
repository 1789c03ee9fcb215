package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

type FileStore struct {
	filePath string
	mu       sync.RWMutex
	data     *FileData
}

type ProfileFileStore struct {
	*FileStore
}

type FileData struct {
	Profiles []models.Profile `json:"profiles"`
	NextID   int64            `json:"next_id"`
}

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data: &FileData{
			Profiles: []models.Profile{},
			NextID:   1,
		},
	}

	// a missing file is fine, it is created on first save
	if err := fs.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
	}

	return fs, nil
}

func NewProfileService(filePath string) (storage.ProfileService, error) {
	fs, err := New(filePath)
	if err != nil {
		return nil, err
	}
	return &ProfileFileStore{FileStore: fs}, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, fs.data)
}

func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fs.filePath, data, 0644)
}

func (fs *FileStore) nextID() int64 {
	id := fs.data.NextID
	fs.data.NextID++
	return id
}

func (ps *ProfileFileStore) List(options storage.ProfileListOptions) ([]models.Profile, int64, error) {
	fs := ps.FileStore
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(fs.data.Profiles))
	for _, p := range fs.data.Profiles {
		if options.Filter != "" {
			filter := strings.ToLower(options.Filter)
			if !strings.Contains(strings.ToLower(p.Name), filter) &&
				!strings.Contains(strings.ToLower(p.Text), filter) {
				continue
			}
		}
		profiles = append(profiles, p)
	}

	total := int64(len(profiles))

	sortBy := options.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	sort.Slice(profiles, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "id":
			less = profiles[i].ID < profiles[j].ID
		case "create_time":
			less = profiles[i].CreateTime.Before(profiles[j].CreateTime)
		case "update_time":
			less = profiles[i].UpdateTime.Before(profiles[j].UpdateTime)
		default:
			less = profiles[i].Name < profiles[j].Name
		}
		if options.SortOrder == "desc" {
			return !less
		}
		return less
	})

	if options.Offset > 0 {
		if options.Offset >= len(profiles) {
			return []models.Profile{}, total, nil
		}
		profiles = profiles[options.Offset:]
	}

	if options.Limit > 0 && options.Limit < len(profiles) {
		profiles = profiles[:options.Limit]
	}

	return profiles, total, nil
}

func (ps *ProfileFileStore) Get(name string) (*models.Profile, error) {
	fs := ps.FileStore
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, p := range fs.data.Profiles {
		if p.Name == name {
			found := p
			return &found, nil
		}
	}
	return nil, storage.ErrProfileNotFound
}

func (ps *ProfileFileStore) Add(profile models.Profile) (int64, error) {
	fs := ps.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, p := range fs.data.Profiles {
		if p.Name == profile.Name {
			return 0, fmt.Errorf("profile %q already exists", profile.Name)
		}
	}

	profile.ID = fs.nextID()
	if profile.CreateTime.IsZero() {
		profile.CreateTime = time.Now()
	}
	if profile.UpdateTime.IsZero() {
		profile.UpdateTime = time.Now()
	}

	fs.data.Profiles = append(fs.data.Profiles, profile)

	if err := fs.save(); err != nil {
		return 0, err
	}

	return profile.ID, nil
}

func (ps *ProfileFileStore) Update(name string, update models.ProfileOptional) error {
	fs := ps.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.data.Profiles {
		if fs.data.Profiles[i].Name == name {
			fs.data.Profiles[i].Update(&update)
			if update.UpdateTime == nil {
				fs.data.Profiles[i].UpdateTime = time.Now()
			}
			return fs.save()
		}
	}
	return storage.ErrProfileNotFound
}

func (ps *ProfileFileStore) Delete(name string) error {
	fs := ps.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.data.Profiles {
		if fs.data.Profiles[i].Name == name {
			fs.data.Profiles = append(fs.data.Profiles[:i], fs.data.Profiles[i+1:]...)
			return fs.save()
		}
	}
	return storage.ErrProfileNotFound
}
