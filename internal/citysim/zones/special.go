package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// meltdownChance gates the nuclear meltdown roll: disasters enabled and
// a 1-in-10000 draw.
const meltdownChance = 10000

// civicRepairCadence and wornRepairCadence are the two repair_zone
// polling periods, chosen by zone category: civic buildings (hospital,
// church, the two public-safety stations) are checked every 16 ticks,
// while the heavier-traffic special buildings (port, airport, coal,
// nuclear, stadium) wear faster and are checked every 8.
const (
	civicRepairCadence = 15
	wornRepairCadence  = 7
)

// evaluateSpecial processes one non-growth zone center: port, airport,
// coal plant, nuclear plant, fire station, police station, stadium,
// hospital, or church. These only count themselves, periodically repair
// rubble within their footprint, and (airport/port/coal/nuclear)
// maintain their sprite traffic or power contribution; nuclear
// additionally rolls for meltdown.
func evaluateSpecial(m *tilemap.TileMap, r *rng.Rng, sprites *sprite.Registry, counts *Counts, disastersEnabled bool, onMeltdown func(x, y int), cityTime, x, y int) {
	c := m.Get(x, y)
	ch := c.Character()

	civicDue := cityTime&civicRepairCadence == 0
	wornDue := cityTime&wornRepairCadence == 0

	switch {
	case ch == tilemap.HospitalBase:
		counts.Hospitals++
		if civicDue {
			repairZone(m, x, y, 3, tilemap.HospitalBase)
		}
	case tilemap.ChurchFirst <= ch && ch <= tilemap.ChurchLast:
		counts.Churches++
		if civicDue {
			repairZone(m, x, y, 3, ch)
		}
	case ch >= tilemap.PortBase && ch <= tilemap.PortLast:
		counts.Ports++
		if wornDue {
			repairZone(m, x, y, 4, tilemap.PortBase)
		}
		if sprites.FindKind(sprite.Ship) == nil && r.Chance(20) {
			sprites.Spawn(sprite.Ship, x, y, 600)
		}
	case ch == tilemap.AirportBase:
		counts.Airports++
		if wornDue {
			repairZone(m, x, y, 6, tilemap.AirportBase)
		}
		if sprites.FindKind(sprite.Airplane) == nil && r.Chance(40) {
			sprites.Spawn(sprite.Airplane, x, y, 300)
		}
	case ch == tilemap.CoalPlantBase:
		counts.CoalPlants++
		if wornDue {
			repairZone(m, x, y, 4, tilemap.CoalPlantBase)
		}
	case tilemap.IsNuclear(ch):
		counts.NuclearPlants++
		if wornDue {
			repairZone(m, x, y, 4, tilemap.NuclearBase)
		}
		if disastersEnabled && r.Chance(meltdownChance) && onMeltdown != nil {
			onMeltdown(x, y)
		}
	case ch == tilemap.FireStBase:
		counts.FireStations++
		if civicDue {
			repairZone(m, x, y, 3, tilemap.FireStBase)
		}
	case ch == tilemap.PoliceStBase:
		counts.PoliceStations++
		if civicDue {
			repairZone(m, x, y, 3, tilemap.PoliceStBase)
		}
	case (ch >= tilemap.StadiumBase1 && ch <= tilemap.StadiumBase1Last) || (ch >= tilemap.StadiumBase2 && ch <= tilemap.StadiumBase2Last):
		counts.Stadiums++
		if wornDue {
			repairZone(m, x, y, 4, tilemap.StadiumBase1)
		}
	}
}
