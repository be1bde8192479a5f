// Command citysim runs a deterministic tile-based city simulation and
// serves it over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tobyjaguar/microcity/internal/citysim/api"
	"github.com/tobyjaguar/microcity/internal/citysim/persistence"
	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/sim"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("microcity starting")

	seed := envUint64("CITYSIM_SEED", 42)
	dbPath := envString("CITYSIM_DB_PATH", "data/citysim.db")
	apiPort := envInt("CITYSIM_API_PORT", 8080)
	cityTax := envInt("CITYSIM_CITY_TAX", sim.DefaultCityTax)
	gameLevel := envInt("CITYSIM_GAME_LEVEL", sim.DefaultGameLevel)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := persistence.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", dbPath)

	// ── Load or Generate City ────────────────────────────────────────
	s := sim.NewGame(seed)
	s.SetCityTax(cityTax)
	s.SetGameLevel(gameLevel)

	if cityTime, tiles, ok, loadErr := db.LoadLatestSnapshot(); loadErr != nil {
		slog.Warn("failed to load saved snapshot, starting fresh", "error", loadErr)
	} else if ok {
		s.LoadTiles(tiles)
		s.SetCityTime(cityTime)
		slog.Info("restored city from snapshot", "city_time", cityTime)
	} else {
		slog.Info("no saved snapshot found, starting a fresh city")
	}

	s.SetSpeed(scheduler.Medium)

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("CITYSIM_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("CITYSIM_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		Sim:      s,
		DB:       db,
		Port:     apiPort,
		AdminKey: adminKey,
	}
	apiServer.Start()

	// ── Signal Handling ───────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		close(stop)
	}()

	fmt.Printf("\nmicrocity is running: city_time=%d, population=%d\n", s.CityTime(), s.GetPopulation())
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", apiPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	runLoop(s, db, stop)

	// Final save on shutdown.
	slog.Info("final save...")
	if err := db.SaveSnapshot(s.CityTime(), s.DumpTiles()); err != nil {
		slog.Error("final save failed", "error", err)
	}
	fmt.Println("Simulation stopped. City state saved.")
}

// runLoop drives Step at a fixed cadence until stop is closed, saving a
// snapshot and a stats_history row once every 48 city-time ticks (one
// in-game year), which keeps persistence cheap; a crash loses at most
// the simulated state since the last such save.
func runLoop(s *sim.Simulation, db *persistence.DB, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	lastSavedTime := s.CityTime()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Step()
			if s.CityTime() != lastSavedTime && s.CityTime()%48 == 0 {
				lastSavedTime = s.CityTime()
				saveProgress(s, db)
			}
		}
	}
}

func saveProgress(s *sim.Simulation, db *persistence.DB) {
	if err := db.SaveSnapshot(s.CityTime(), s.DumpTiles()); err != nil {
		slog.Error("periodic snapshot failed", "error", err)
		return
	}

	stats := s.GetStats()
	row := persistence.StatsRow{
		CityTime:   stats.CityTime,
		ResPop:     int(stats.ResPop),
		ComPop:     int(stats.ComPop),
		IndPop:     int(stats.IndPop),
		Crime:      int(stats.AverageCrime),
		Pollution:  int(stats.AveragePollution),
		TotalFunds: s.GetBudget().TotalFunds,
		CityScore:  stats.CityScore,
		CityTax:    s.GetBudget().CityTax,
	}
	if err := db.SaveStatsSnapshot(row); err != nil {
		slog.Error("stats snapshot failed", "error", err)
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
