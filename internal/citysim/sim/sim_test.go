package sim

import (
	"testing"

	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
	"github.com/tobyjaguar/microcity/internal/citysim/tools"
)

func TestNewGamePopulatesMapDeterministically(t *testing.T) {
	a := NewGame(42)
	b := NewGame(42)

	for x := 0; x < tilemap.Width; x += 7 {
		for y := 0; y < tilemap.Height; y += 7 {
			if a.GetTile(x, y) != b.GetTile(x, y) {
				t.Fatalf("expected identical terrain at (%d,%d) for the same seed", x, y)
			}
		}
	}
}

func TestStepAdvancesCityTimeAtFastSpeed(t *testing.T) {
	s := NewGame(1)
	s.SetSpeed(scheduler.Fast)

	for i := 0; i < 16; i++ {
		s.Step()
	}
	if s.CityTime() != 1 {
		t.Fatalf("expected one city_time tick after one full 16-phase cycle, got %d", s.CityTime())
	}
}

func TestPausedSimulationNeverAdvances(t *testing.T) {
	s := NewGame(1)

	for i := 0; i < 32; i++ {
		s.Step()
	}
	if s.CityTime() != 0 {
		t.Fatalf("expected a paused simulation to never advance, got city_time=%d", s.CityTime())
	}
}

func TestDoToolAppliesAndChargesFunds(t *testing.T) {
	s := NewGame(7)
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			s.Map.Set(x, y, tilemap.NewCell(tilemap.Dirt, tilemap.FlagBulldozable))
		}
	}
	before := s.Budget.TotalFunds

	res := s.DoTool(tools.Road, 10, 10)
	if res != tools.OK {
		t.Fatalf("expected road placement to succeed, got %v", res)
	}
	if s.Budget.TotalFunds != before-tools.Cost(tools.Road) {
		t.Fatalf("expected funds to be debited by the road cost")
	}
	if s.MapSerial == 0 {
		t.Fatalf("expected map_serial to tick on a successful tool application")
	}
}

func TestSetGameLevelResetsStartingFunds(t *testing.T) {
	s := NewGame(1)
	s.SetGameLevel(2)
	if s.Budget.TotalFunds != 5000 {
		t.Fatalf("expected hard level starting funds of 5000, got %d", s.Budget.TotalFunds)
	}
}

func TestMakeExplosionSpawnsSprite(t *testing.T) {
	s := NewGame(3)
	s.MakeExplosion(20, 20)
	if len(s.SpriteList()) == 0 {
		t.Fatalf("expected an explosion sprite to be spawned")
	}
}

func TestOnMessageReceivesImportantDisasterEvents(t *testing.T) {
	s := NewGame(5)
	var got Message
	s.OnMessage = func(m Message) { got = m }

	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			s.Map.Set(x, y, tilemap.NewCell(tilemap.TreeFirst, tilemap.FlagBurnable))
		}
	}
	s.SetFire()

	if got.Text == "" {
		t.Fatalf("expected an on_message callback for the fire event")
	}
	if !got.Important {
		t.Fatalf("expected the fire message to be marked important")
	}
}
