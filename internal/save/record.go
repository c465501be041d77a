package save

// CurrentVersion is the save record version written by this build.
const CurrentVersion = "0.1"

// Upgrades holds the three persistent upgrade levels. The simulation
// reads them as multipliers every tick through a shared reference and
// never writes them except through the shop purchase operation.
type Upgrades struct {
	FuelEff   int
	HookPower int
	DigSpeed  int
}

// Data is the persisted progress record. Missing or invalid fields
// default rather than fail: a corrupt save must never interrupt a run.
type Data struct {
	Version   string
	HighScore int
	Upgrades  Upgrades
}

// Defaults returns the record used when nothing valid is stored.
func Defaults() Data {
	return Data{Version: CurrentVersion}
}

// normalize replaces invalid fields with their defaults.
func (d *Data) normalize() {
	if d.Version == "" {
		d.Version = CurrentVersion
	}
	if d.HighScore < 0 {
		d.HighScore = 0
	}
	if d.Upgrades.FuelEff < 0 {
		d.Upgrades.FuelEff = 0
	}
	if d.Upgrades.HookPower < 0 {
		d.Upgrades.HookPower = 0
	}
	if d.Upgrades.DigSpeed < 0 {
		d.Upgrades.DigSpeed = 0
	}
}
