package scheduler

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/models"
)

type Scheduler struct {
	SpotlightRepo datastore.SpotlightRepository
	ColorRepo     datastore.ColorRepository
	// Now is the clock, time.Now unless replaced in tests
	Now func() time.Time

	mu     sync.Mutex
	timer  *time.Timer
	ticker *time.Ticker
	done   chan struct{}
}

func NewScheduler(spotlights datastore.SpotlightRepository, colors datastore.ColorRepository) *Scheduler {
	return &Scheduler{
		SpotlightRepo: spotlights,
		ColorRepo:     colors,
		Now:           time.Now,
		done:          make(chan struct{}),
	}
}

// Start generates today's spotlight if missing, then runs at midnight every day
func (s *Scheduler) Start() {
	if _, err := s.GenerateSpotlight(); err != nil {
		log.Warnf("Initial spotlight generation failed: %v", err)
	}

	now := s.Now()
	nextMidnight := datastore.StartOfDay(now).AddDate(0, 0, 1)
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Infof("Scheduler started. Next spotlight in %v", durationUntilMidnight.Round(time.Second))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateSpotlight()

		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		go func() {
			for {
				select {
				case <-ticker.C:
					s.GenerateSpotlight()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	log.Info("Scheduler stopped")
}

// GenerateSpotlight features a random collected color for today. It returns
// the existing spotlight when today already has one.
func (s *Scheduler) GenerateSpotlight() (models.Spotlight, error) {
	today := datastore.StartOfDay(s.Now())
	logger := log.WithField("date", today.Format("2006-01-02"))

	existing, err := s.SpotlightRepo.GetByDate(today)
	if err == nil && existing.ID != 0 {
		logger.Debugf("Spotlight already set: %s", existing.ColorName)
		return existing, nil
	}
	if err != nil && !datastore.IsNoRows(err) {
		logger.Errorf("Error reading spotlight: %v", err)
		return models.Spotlight{}, err
	}

	record, err := s.ColorRepo.RandomRecord()
	if err != nil {
		if datastore.IsNoRows(err) {
			logger.Info("No collected colors yet, skipping spotlight")
		} else {
			logger.Errorf("Error picking spotlight color: %v", err)
		}
		return models.Spotlight{}, err
	}

	saved, err := s.SpotlightRepo.Create(models.Spotlight{
		Date:      today,
		ColorID:   record.ID,
		Hex:       record.Hex,
		ColorName: record.Name,
		CreatedAt: s.Now(),
	})
	if err != nil {
		logger.Errorf("Error saving spotlight: %v", err)
		return models.Spotlight{}, err
	}

	logger.WithField("hex", saved.Hex).Infof("Spotlight generated: %s", saved.ColorName)
	return saved, nil
}
