package datastore

import (
	"database/sql"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/color-collector/api/models"
)

// The memory repositories back DB_TYPE=memory for local development and
// tests. Data is lost on restart.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[string]models.User{}}
}

func (s *MemoryUserStore) Create(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return user, fmt.Errorf("failed to create user: duplicate email or username")
		}
	}
	s.users[user.UserID] = user
	return user, nil
}

func (s *MemoryUserStore) Get(userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return models.User{}, NoRowsError{true, sql.ErrNoRows}
	}
	return user, nil
}

func (s *MemoryUserStore) find(match func(models.User) bool) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, NoRowsError{true, sql.ErrNoRows}
}

func (s *MemoryUserStore) GetUserByEmail(email string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.Email == email })
}

func (s *MemoryUserStore) GetUserByUsername(username string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.Username == username })
}

func (s *MemoryUserStore) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, err := s.GetUserByEmail(credentials.Email)
	if err != nil {
		return models.User{}, err
	}
	if !user.CheckPassword(credentials.Password) {
		return models.User{}, fmt.Errorf("invalid credentials for %s", credentials.Email)
	}
	return user, nil
}

type MemoryColorStore struct {
	mu      sync.RWMutex
	records map[string]models.ColorRecord
}

func NewMemoryColorStore() *MemoryColorStore {
	return &MemoryColorStore{records: map[string]models.ColorRecord{}}
}

// copies detach the stored pointers from callers
func cloneRecord(r models.ColorRecord) models.ColorRecord {
	if r.Proximity != nil {
		p := *r.Proximity
		r.Proximity = &p
	}
	if r.Location != nil {
		l := *r.Location
		r.Location = &l
	}
	return r
}

func (s *MemoryColorStore) Create(record models.ColorRecord) (models.ColorRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; exists {
		return models.ColorRecord{}, fmt.Errorf("failed to create color: duplicate id %s", record.ID)
	}
	s.records[record.ID] = cloneRecord(record)
	return cloneRecord(record), nil
}

func (s *MemoryColorStore) Get(userID, id string) (models.ColorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok || r.UserID != userID {
		return models.ColorRecord{}, NoRowsError{true, sql.ErrNoRows}
	}
	return cloneRecord(r), nil
}

func (s *MemoryColorStore) filter(match func(models.ColorRecord) bool, ascending bool) []models.ColorRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.ColorRecord{}
	for _, r := range s.records {
		if match(r) {
			out = append(out, cloneRecord(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateAdded.Equal(out[j].DateAdded) {
			return out[i].ID < out[j].ID
		}
		if ascending {
			return out[i].DateAdded.Before(out[j].DateAdded)
		}
		return out[i].DateAdded.After(out[j].DateAdded)
	})
	return out
}

func (s *MemoryColorStore) ListByUser(userID string, order ListOrder) ([]models.ColorRecord, error) {
	return s.filter(func(r models.ColorRecord) bool { return r.UserID == userID }, order == OrderTimeline), nil
}

func (s *MemoryColorStore) ListLocated(userID string) ([]models.ColorRecord, error) {
	return s.filter(func(r models.ColorRecord) bool {
		return r.UserID == userID && r.Location != nil
	}, true), nil
}

func (s *MemoryColorStore) update(userID, id string, apply func(*models.ColorRecord)) (models.ColorRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || r.UserID != userID {
		return models.ColorRecord{}, NoRowsError{true, sql.ErrNoRows}
	}
	apply(&r)
	s.records[id] = r
	return cloneRecord(r), nil
}

func (s *MemoryColorStore) UpdateProximity(userID, id string, proximity models.Proximity) (models.ColorRecord, error) {
	return s.update(userID, id, func(r *models.ColorRecord) { r.Proximity = &proximity })
}

func (s *MemoryColorStore) UpdateLocation(userID, id string, location models.Location) (models.ColorRecord, error) {
	return s.update(userID, id, func(r *models.ColorRecord) { r.Location = &location })
}

func (s *MemoryColorStore) Delete(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || r.UserID != userID {
		return NoRowsError{true, sql.ErrNoRows}
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryColorStore) RandomRecord() (models.ColorRecord, error) {
	all := s.filter(func(models.ColorRecord) bool { return true }, true)
	if len(all) == 0 {
		return models.ColorRecord{}, NoRowsError{true, sql.ErrNoRows}
	}
	return all[rand.Intn(len(all))], nil
}

type MemorySpotlightStore struct {
	mu     sync.RWMutex
	nextID int
	byDate map[string]models.Spotlight
}

func NewMemorySpotlightStore() *MemorySpotlightStore {
	return &MemorySpotlightStore{byDate: map[string]models.Spotlight{}}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *MemorySpotlightStore) Create(spotlight models.Spotlight) (models.Spotlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dateKey(spotlight.Date)
	if _, exists := s.byDate[key]; exists {
		return models.Spotlight{}, fmt.Errorf("failed to create daily spotlight: %s already set", key)
	}
	s.nextID++
	spotlight.ID = s.nextID
	s.byDate[key] = spotlight
	return spotlight, nil
}

func (s *MemorySpotlightStore) GetByDate(date time.Time) (models.Spotlight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spotlight, ok := s.byDate[dateKey(StartOfDay(date))]
	if !ok {
		return models.Spotlight{}, NoRowsError{true, sql.ErrNoRows}
	}
	return spotlight, nil
}

func (s *MemorySpotlightStore) GetToday() (models.Spotlight, error) {
	return s.GetByDate(time.Now())
}
