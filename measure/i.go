package measure

// UnitSymbol identifies one of the supported length units.
type UnitSymbol string

const (
	UnitMillimeter UnitSymbol = "mm"
	UnitCentimeter UnitSymbol = "cm"
	UnitMeter      UnitSymbol = "m"
	UnitKilometer  UnitSymbol = "km"
	UnitInch       UnitSymbol = "in"
	UnitFoot       UnitSymbol = "ft"
	UnitYard       UnitSymbol = "yd"
	UnitMile       UnitSymbol = "mi"
)

// LengthFormat selects how lengths and derived quantities are displayed.
type LengthFormat string

const (
	FormatDecimal       LengthFormat = "decimal"
	FormatArchitectural LengthFormat = "architectural"
	FormatEngineering   LengthFormat = "engineering"
	FormatFractional    LengthFormat = "fractional"
)

type DisplayConfig struct {
	Format    LengthFormat `yaml:"format" json:"format"`
	Unit      UnitSymbol   `yaml:"unit" json:"unit"`
	Precision int          `yaml:"precision" json:"precision"`
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Format:    FormatDecimal,
		Unit:      UnitMeter,
		Precision: 2,
	}
}

// Quantity is implemented by every dimensioned value this package can
// produce: host lengths, Area and Volume. The scalar is always expressed
// in the host's base length unit raised to the quantity's dimension.
type Quantity interface {
	BaseUnits() float64
}

// Length is the host-supplied one-dimensional quantity.
type Length interface {
	BaseUnits() float64
}

type LengthSystem interface {
	ParseLength(s string) (Length, error)
	LengthFromBaseUnits(v float64) Length

	// UnitInBaseUnits reports one unit of the symbol expressed in base
	// length units.
	UnitInBaseUnits(u UnitSymbol) float64

	FormatArea(baseUnits float64) string
}

type DisplayConfigProvider interface {
	GetDisplayConfig() (DisplayConfig, error)
}

// Host bundles the external collaborators: the length primitive and the
// active model's display configuration.
type Host interface {
	LengthSystem
	DisplayConfigProvider
}
