package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const statsFile = "data/stats.json"

// GameStats holds the persisted high score and the record of finished games.
// It is the only component that touches the filesystem; the game engine never
// sees it beyond the scalar high score passed into each tick.
type GameStats struct {
	mu sync.RWMutex

	HighScore int          `json:"highScore"`
	Games     []GameRecord `json:"games"`
}

// GameRecord is one finished game.
type GameRecord struct {
	Session   string    `json:"session"`
	Score     int       `json:"score"`
	Won       bool      `json:"won"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// NewGameStats loads saved stats, starting empty when no file exists yet.
func NewGameStats() *GameStats {
	stats := &GameStats{
		Games: make([]GameRecord, 0),
	}
	if err := stats.load(statsFile); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("could not load stats: %v", err)
		}
	}
	return stats
}

func (s *GameStats) load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, s)
}

// Save writes the stats to data/stats.json, creating data/ on demand.
func (s *GameStats) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := os.MkdirAll("data", 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(statsFile, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

// AddGame appends a finished game to the record.
func (s *GameStats) AddGame(rec GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games = append(s.Games, rec)
}

// RecordHighScore stores score as the new record if it beats the current one.
func (s *GameStats) RecordHighScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.HighScore {
		s.HighScore = score
	}
}

func (s *GameStats) GetHighScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HighScore
}

func (s *GameStats) GamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Games)
}
