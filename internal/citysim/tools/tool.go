// Package tools implements the tool engine: validate, mutate, restitch,
// and report, for every placeable tool.
package tools

// Tool is the tagged variant dispatched in Apply.
type Tool int

const (
	Bulldozer Tool = iota
	Road
	Rail
	Wire
	Park
	Residential
	Commercial
	Industrial
	PoliceStation
	FireStation
	Stadium
	Seaport
	CoalPlant
	NuclearPlant
	Airport
	Query
)

// Result is the outcome of one do_tool call.
type Result int

const (
	OK Result = iota
	Failed
	NeedBulldoze
	NoMoney
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case Failed:
		return "FAILED"
	case NeedBulldoze:
		return "NEED_BULLDOZE"
	case NoMoney:
		return "NO_MONEY"
	default:
		return "UNKNOWN"
	}
}

// Cost table.
var cost = map[Tool]int{
	Bulldozer:     1,
	Road:          10,
	Rail:          20,
	Wire:          5,
	Park:          10,
	Residential:   100,
	Commercial:    100,
	Industrial:    100,
	PoliceStation: 500,
	FireStation:   500,
	Stadium:       5000,
	Seaport:       3000,
	CoalPlant:     3000,
	NuclearPlant:  5000,
	Airport:       10000,
	Query:         0,
}

// Cost returns the tool's fixed cost.
func Cost(t Tool) int { return cost[t] }

// footprint gives the N in an NxN building footprint for tools that
// place more than a single cell.
var footprint = map[Tool]int{
	Residential:   3,
	Commercial:    3,
	Industrial:    3,
	PoliceStation: 3,
	FireStation:   3,
	Stadium:       4,
	Seaport:       4,
	CoalPlant:     4,
	NuclearPlant:  4,
	Airport:       6,
}
