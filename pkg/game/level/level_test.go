package level

import "testing"

func TestTableHasTenLevels(t *testing.T) {
	if Count() != 10 {
		t.Fatalf("Count() = %d, want 10", Count())
	}
}

func TestTableSanity(t *testing.T) {
	for i, def := range All() {
		if def.Number != i+1 {
			t.Errorf("level at index %d has Number %d", i, def.Number)
		}
		if def.Width < 10 || def.Height < 10 {
			t.Errorf("level %d has implausible size %dx%d", def.Number, def.Width, def.Height)
		}
		if def.Environment < SoilFrontier || def.Environment > HydrothermalRealm {
			t.Errorf("level %d has unknown environment %d", def.Number, def.Environment)
		}
		if def.TargetPorosity <= 0 || def.TargetPorosity >= 1 {
			t.Errorf("level %d has porosity %v outside (0,1)", def.Number, def.TargetPorosity)
		}
		if def.GrainMin < 1 || def.GrainMax < def.GrainMin {
			t.Errorf("level %d has bad grain range [%d,%d]", def.Number, def.GrainMin, def.GrainMax)
		}
		if def.BaseFlowSpeed <= 0 {
			t.Errorf("level %d has non-positive flow speed", def.Number)
		}
		if def.ColonyGoal <= 0 {
			t.Errorf("level %d has non-positive colony goal", def.Number)
		}
		if len(def.Substrates) == 0 {
			t.Errorf("level %d has no substrates", def.Number)
		}
	}
}

func TestByNumber(t *testing.T) {
	def, ok := ByNumber(5)
	if !ok {
		t.Fatal("ByNumber(5) not found")
	}
	if def.Title != "The Methane Vents" {
		t.Errorf("level 5 title = %q", def.Title)
	}
	if def.ToxicFraction <= 0 {
		t.Error("level 5 should introduce toxic zones")
	}
	if _, ok := ByNumber(11); ok {
		t.Error("ByNumber(11) should not exist")
	}
}

func TestEnvironmentMetadata(t *testing.T) {
	if len(Environments()) != 5 {
		t.Fatalf("Environments() has %d entries, want 5", len(Environments()))
	}
	for i, env := range Environments() {
		if env.Name == "" || env.Tagline == "" {
			t.Errorf("environment %d has empty metadata", i)
		}
	}
	if EnvironmentByIndex(-1).Name != environments[0].Name {
		t.Error("EnvironmentByIndex should clamp unknown indices")
	}
}
