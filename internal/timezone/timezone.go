package timezone

import (
	"time"
	_ "time/tzdata"
)

const Default = "America/Sao_Paulo"

const dayLayout = "2006-01-02"

// Location cai para Default quando tz é vazio ou desconhecido, e para UTC
// se nem Default estiver disponível.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(Default); err == nil {
		return loc
	}
	return time.UTC
}

// ParseDay interpreta YYYY-MM-DD como meia-noite em loc. Vazio devolve nil.
func ParseDay(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(dayLayout, value, loc)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
