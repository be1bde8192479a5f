package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/tobyjaguar/microcity/internal/citysim/persistence"
	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/tools"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	res, com, ind := s.Sim.GetDemands()
	writeJSON(w, map[string]any{
		"name":        "microcity",
		"city_time":   s.Sim.CityTime(),
		"date":        s.Sim.GetDateString(),
		"population":  s.Sim.GetPopulation(),
		"city_class":  s.Sim.CityClass().String(),
		"city_score":  s.Sim.CityScore(),
		"map_serial":  s.Sim.MapSerial,
		"demand_res":  res,
		"demand_com":  com,
		"demand_ind":  ind,
	})
}

// handleMap returns a rectangular region of tiles: ?x=&y=&w=&h=,
// defaulting to the full map.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	x := queryInt(r, "x", 0)
	y := queryInt(r, "y", 0)
	width := queryInt(r, "w", 120)
	height := queryInt(r, "h", 100)

	region := s.Sim.GetRegion(x, y, width, height)
	writeJSON(w, map[string]any{
		"x": x, "y": y, "w": width, "h": height,
		"tiles": region,
	})
}

// handleTile returns one cell: GET /api/v1/tile/:x/:y.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/tile/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		http.Error(w, "expected /api/v1/tile/:x/:y", http.StatusBadRequest)
		return
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be integers", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"x": x, "y": y, "tile": s.Sim.GetTile(x, y)})
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.GetBudget())
}

func (s *Server) handleStatsHistory(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	limit := queryInt(r, "limit", 30)
	if limit <= 0 || limit > 1000 {
		limit = 30
	}
	from := queryInt(r, "from", 0)
	to := queryInt(r, "to", 0)

	rows, err := s.DB.LoadStatsHistory(from, to, limit)
	if err != nil {
		writeJSON(w, []persistence.StatsRow{})
		return
	}
	if rows == nil {
		rows = []persistence.StatsRow{}
	}
	writeJSON(w, rows)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Tool string `json:"tool"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	t, ok := parseTool(req.Tool)
	if !ok {
		http.Error(w, "unknown tool", http.StatusBadRequest)
		return
	}

	res := s.Sim.DoTool(t, req.X, req.Y)
	writeJSON(w, map[string]any{"result": res.String()})
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed int `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < int(scheduler.Paused) || req.Speed > int(scheduler.Fast) {
			http.Error(w, "speed must be 0-3", http.StatusBadRequest)
			return
		}
		s.Sim.SetSpeed(scheduler.Speed(req.Speed))
	}
	writeJSON(w, map[string]int{"speed": int(s.Sim.GetSpeed())})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	if err := s.DB.SaveSnapshot(s.Sim.CityTime(), s.Sim.DumpTiles()); err != nil {
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"city_time": s.Sim.CityTime(), "message": "snapshot saved"})
}

func (s *Server) handleDisaster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Type string `json:"type"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	switch req.Type {
	case "fire":
		s.Sim.SetFire()
	case "flood":
		s.Sim.MakeFlood()
	case "earthquake":
		s.Sim.MakeEarthquake()
	case "tornado":
		s.Sim.MakeTornado()
	case "monster":
		s.Sim.MakeMonster()
	case "explosion":
		s.Sim.MakeExplosion(req.X, req.Y)
	default:
		http.Error(w, "unknown disaster type", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"result": "triggered"})
}

func parseTool(name string) (tools.Tool, bool) {
	switch name {
	case "bulldozer":
		return tools.Bulldozer, true
	case "road":
		return tools.Road, true
	case "rail":
		return tools.Rail, true
	case "wire":
		return tools.Wire, true
	case "park":
		return tools.Park, true
	case "residential":
		return tools.Residential, true
	case "commercial":
		return tools.Commercial, true
	case "industrial":
		return tools.Industrial, true
	case "police":
		return tools.PoliceStation, true
	case "fire_station":
		return tools.FireStation, true
	case "stadium":
		return tools.Stadium, true
	case "seaport":
		return tools.Seaport, true
	case "coal":
		return tools.CoalPlant, true
	case "nuclear":
		return tools.NuclearPlant, true
	case "airport":
		return tools.Airport, true
	case "query":
		return tools.Query, true
	default:
		return 0, false
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
