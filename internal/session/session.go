// Package session ties the entropy sources, the sampler and storage together
// and runs complete generation sessions.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmoreau/eurodraw/internal/draw"
	"github.com/jmoreau/eurodraw/internal/entropy"
	"github.com/jmoreau/eurodraw/internal/pendulum"
	"github.com/jmoreau/eurodraw/internal/persistence"
	"github.com/jmoreau/eurodraw/internal/weather"
)

// Service runs generation sessions. DB may be nil (no persistence) and
// Weather may be nil (fallback token).
type Service struct {
	DB      *persistence.DB
	Weather *weather.Client
	City    string
	Postal  string
	Trials  int

	// chaotic caches the pendulum observable: it is a process constant,
	// so one simulation per service is enough.
	chaoticOnce sync.Once
	chaotic     float64
}

// Outcome is the full result of one generation session.
type Outcome struct {
	Run        persistence.Run
	Picks      []draw.Pick
	Conditions *weather.Conditions // nil when live weather was unavailable
}

// fallbackToken builds an entropy token when the weather API is unavailable.
// It still changes between sessions (wall clock) so fallback runs do not all
// share a token, but it is not the primary entropy path.
func fallbackToken(now time.Time) []byte {
	return []byte(fmt.Sprintf("fallback,%s", now.Format("20060102150405")))
}

// Generate runs one full session at the given time: simulate, extract, fetch
// weather, combine, sample trials plus the official pick, and persist when a
// database is configured.
func (s *Service) Generate(now time.Time) (Outcome, error) {
	s.chaoticOnce.Do(func() {
		s.chaotic = pendulum.ChaoticValue()
		slog.Debug("chaotic value extracted", "value", s.chaotic)
	})

	var (
		cond  *weather.Conditions
		token []byte
	)
	if c, err := s.Weather.Fetch(); err != nil {
		slog.Warn("weather unavailable, using fallback token", "error", err)
		token = fallbackToken(now)
	} else {
		cond = c
		token = c.SeedToken()
	}

	gen := draw.Generator{
		Chaotic:  s.chaotic,
		Token:    token,
		BaseTime: entropy.TimeSeed(now),
	}
	picks := gen.Run(s.Trials)

	run := persistence.Run{
		ID:        uuid.NewString(),
		CreatedAt: now.Unix(),
		City:      s.City,
		Postal:    s.Postal,
		TokenHash: draw.TokenHash(token),
		Chaotic:   s.chaotic,
		BaseTime:  gen.BaseTime,
	}
	if cond != nil {
		run.Temp = cond.Temp
		run.Humidity = cond.Humidity
		run.Precip = cond.Precipitation
		run.Description = cond.Description
	}

	if s.DB != nil {
		if err := s.DB.SaveRun(run, picks); err != nil {
			return Outcome{}, fmt.Errorf("save run: %w", err)
		}
	}

	slog.Info("session generated",
		"run", run.ID,
		"trials", s.Trials,
		"token_hash", run.TokenHash,
		"base_time", run.BaseTime,
	)

	return Outcome{Run: run, Picks: picks, Conditions: cond}, nil
}
