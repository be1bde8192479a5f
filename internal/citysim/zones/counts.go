// Package zones implements the map scan: per-cell dispatch by tile
// character range into fire/road/rail processors and the residential/
// commercial/industrial/special zone growth engine.
package zones

// Counts tracks the per-tick zone-type census the map scan accumulates,
// read by the budget package for fund calculations (police/fire station
// pop) and by city evaluation (residential/commercial/industrial zone
// counts).
type Counts struct {
	ResZones, ComZones, IndZones int
	PoliceStations, FireStations int
	Hospitals, Churches          int
	Ports, Airports              int
	CoalPlants, NuclearPlants    int
	Stadiums                     int
	RoadTotal, RailTotal         int
	FirePop                      int
}

// Reset clears every counter. Called at phase 0, alongside the census
// package's own ResetTick.
func (c *Counts) Reset() {
	*c = Counts{}
}
