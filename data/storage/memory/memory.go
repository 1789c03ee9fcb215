package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

// MemoryStore keeps profiles in process memory only, useful for tests
// and throwaway runs.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
	nextID   int64
}

type ProfileMemoryStore struct {
	*MemoryStore
}

func New() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]models.Profile),
		nextID:   1,
	}
}

func (ms *MemoryStore) nextIDValue() int64 {
	id := ms.nextID
	ms.nextID++
	return id
}

func NewProfileService() storage.ProfileService {
	return &ProfileMemoryStore{MemoryStore: New()}
}

func (ps *ProfileMemoryStore) List(options storage.ProfileListOptions) ([]models.Profile, int64, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var profiles []models.Profile
	for _, p := range ps.profiles {
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

func (ps *ProfileMemoryStore) Get(name string) (*models.Profile, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	p, ok := ps.profiles[name]
	if !ok {
		return nil, storage.ErrProfileNotFound
	}
	return &p, nil
}

func (ps *ProfileMemoryStore) Add(profile models.Profile) (int64, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, ok := ps.profiles[profile.Name]; ok {
		return 0, fmt.Errorf("profile %q already exists", profile.Name)
	}

	profile.ID = ps.nextIDValue()
	if profile.CreateTime.IsZero() {
		profile.CreateTime = time.Now()
	}
	if profile.UpdateTime.IsZero() {
		profile.UpdateTime = time.Now()
	}
	ps.profiles[profile.Name] = profile
	return profile.ID, nil
}

func (ps *ProfileMemoryStore) Update(name string, update models.ProfileOptional) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	p, ok := ps.profiles[name]
	if !ok {
		return storage.ErrProfileNotFound
	}
	p.Update(&update)
	if update.UpdateTime == nil {
		p.UpdateTime = time.Now()
	}
	// renames re-key the map
	if p.Name != name {
		delete(ps.profiles, name)
	}
	ps.profiles[p.Name] = p
	return nil
}

func (ps *ProfileMemoryStore) Delete(name string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, ok := ps.profiles[name]; !ok {
		return storage.ErrProfileNotFound
	}
	delete(ps.profiles, name)
	return nil
}
