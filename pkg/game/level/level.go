// Package level defines the campaign's static level table and the
// environment metadata that drives generator and palette selection.
package level

// Definition is the immutable input record for world generation.
type Definition struct {
	Number      int
	Title       string
	Chapter     string
	Environment int

	Width  int
	Height int

	ColonyGoal     int
	TargetPorosity float64

	// Grain radius range used by the disk-packing generator, in cells.
	GrainMin int
	GrainMax int

	BaseFlowSpeed    float64
	ToxicFraction    float64
	SubstrateDensity float64
	Substrates       []string
	Rivals           int
}

// Environment describes one of the five biomes of the campaign.
type Environment struct {
	Name    string
	Tagline string
}

// Environment indices
const (
	SoilFrontier = iota
	DeepSediment
	MethaneSeeps
	PermafrostEdge
	HydrothermalRealm
)

var environments = []Environment{
	{Name: "The Soil Frontier", Tagline: "Where Life Begins"},
	{Name: "The Deep Sediment", Tagline: "Darkness Below"},
	{Name: "The Methane Seeps", Tagline: "Rivers of Fire"},
	{Name: "The Permafrost Edge", Tagline: "The Melting World"},
	{Name: "The Hydrothermal Realm", Tagline: "Earth's Furnace"},
}

// Environments returns the biome metadata indexed by environment number.
func Environments() []Environment {
	return environments
}

// EnvironmentByIndex returns the biome for an environment index, clamping
// unknown indices to the first biome.
func EnvironmentByIndex(i int) Environment {
	if i < 0 || i >= len(environments) {
		return environments[0]
	}
	return environments[i]
}
