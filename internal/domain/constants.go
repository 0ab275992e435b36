package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxPartySize             = 100
	MaxMessageLength         = 500
	MaxCancellationReasonLen = 500
	MaxBlackoutReasonLength  = 200
	MaxBoatNameLength        = 100
	MinBoatCapacity          = 1
	MaxBoatCapacity          = 60
	DefaultBoatCapacity      = 12
)

// Pricing структура цен за пассажира (настраивается в config.toml)
type Pricing struct {
	Adult float64
	Child float64
	Baby  float64
}

// PriceFor возвращает суммарную цену за состав группы
func (p Pricing) PriceFor(adults, children, babies int) float64 {
	return float64(adults)*p.Adult + float64(children)*p.Child + float64(babies)*p.Baby
}
