package level

// The campaign table. Map sizes, porosities, flow speeds, toxic fractions
// and colony goals follow the ARKE design document. Grain radii are
// calibrated to the disk generator's stamp budget: one stamp of radius
// 1 or 2 removes about six open cells net of overlap.
var table = []Definition{
	{
		Number: 1, Title: "First Breath", Chapter: "The Soil Frontier",
		Environment: SoilFrontier, Width: 30, Height: 20,
		ColonyGoal: 3, TargetPorosity: 0.70, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.6, ToxicFraction: 0, SubstrateDensity: 0.06,
		Substrates: []string{"O2", "NO3", "CH4"}, Rivals: 0,
	},
	{
		Number: 2, Title: "Roots of Life", Chapter: "The Soil Frontier",
		Environment: SoilFrontier, Width: 35, Height: 22,
		ColonyGoal: 5, TargetPorosity: 0.65, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.7, ToxicFraction: 0, SubstrateDensity: 0.07,
		Substrates: []string{"O2", "NO3", "CH4"}, Rivals: 1,
	},
	{
		Number: 3, Title: "Into the Depths", Chapter: "The Deep Sediment",
		Environment: DeepSediment, Width: 35, Height: 25,
		ColonyGoal: 4, TargetPorosity: 0.50, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.3, ToxicFraction: 0, SubstrateDensity: 0.05,
		Substrates: []string{"NO3", "Fe(III)", "CH4"}, Rivals: 2,
	},
	{
		Number: 4, Title: "The Hungry Dark", Chapter: "The Deep Sediment",
		Environment: DeepSediment, Width: 40, Height: 28,
		ColonyGoal: 6, TargetPorosity: 0.45, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.25, ToxicFraction: 0, SubstrateDensity: 0.05,
		Substrates: []string{"NO3", "Mn(IV)", "Fe(III)", "CH4"}, Rivals: 3,
	},
	{
		Number: 5, Title: "The Methane Vents", Chapter: "The Methane Seeps",
		Environment: MethaneSeeps, Width: 35, Height: 22,
		ColonyGoal: 5, TargetPorosity: 0.60, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.5, ToxicFraction: 0.15, SubstrateDensity: 0.07,
		Substrates: []string{"SO4", "CH4"}, Rivals: 2,
	},
	{
		Number: 6, Title: "Vent Guardians", Chapter: "The Methane Seeps",
		Environment: MethaneSeeps, Width: 40, Height: 25,
		ColonyGoal: 8, TargetPorosity: 0.55, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.6, ToxicFraction: 0.20, SubstrateDensity: 0.08,
		Substrates: []string{"SO4", "CH4", "Fe(III)"}, Rivals: 3,
	},
	{
		Number: 7, Title: "Thawing Grounds", Chapter: "The Permafrost Edge",
		Environment: PermafrostEdge, Width: 40, Height: 25,
		ColonyGoal: 6, TargetPorosity: 0.55, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 0.8, ToxicFraction: 0.10, SubstrateDensity: 0.08,
		Substrates: []string{"O2", "NO3", "CH4"}, Rivals: 3,
	},
	{
		Number: 8, Title: "The Great Thaw", Chapter: "The Permafrost Edge",
		Environment: PermafrostEdge, Width: 45, Height: 28,
		ColonyGoal: 8, TargetPorosity: 0.50, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 1.0, ToxicFraction: 0.15, SubstrateDensity: 0.09,
		Substrates: []string{"NO3", "SO4", "CH4"}, Rivals: 4,
	},
	{
		Number: 9, Title: "The Abyss", Chapter: "The Hydrothermal Realm",
		Environment: HydrothermalRealm, Width: 45, Height: 25,
		ColonyGoal: 8, TargetPorosity: 0.55, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 1.2, ToxicFraction: 0.20, SubstrateDensity: 0.10,
		Substrates: []string{"SO4", "Fe(III)", "Mn(IV)", "CH4"}, Rivals: 4,
	},
	{
		Number: 10, Title: "Earth's Last Stand", Chapter: "The Hydrothermal Realm",
		Environment: HydrothermalRealm, Width: 50, Height: 30,
		ColonyGoal: 12, TargetPorosity: 0.50, GrainMin: 1, GrainMax: 2,
		BaseFlowSpeed: 1.5, ToxicFraction: 0.25, SubstrateDensity: 0.10,
		Substrates: []string{"SO4", "Fe(III)", "Mn(IV)", "CH4", "NO3"}, Rivals: 5,
	},
}

// Count returns the number of levels in the campaign.
func Count() int {
	return len(table)
}

// All returns the full level table in campaign order.
func All() []Definition {
	out := make([]Definition, len(table))
	copy(out, table)
	return out
}

// ByNumber returns the definition for a 1-based level number.
func ByNumber(n int) (Definition, bool) {
	for _, def := range table {
		if def.Number == n {
			return def, true
		}
	}
	return Definition{}, false
}
