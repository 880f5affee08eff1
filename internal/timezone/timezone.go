package timezone

import "time"

// A barbearia opera em um único fuso; todo cálculo de "horário já passou"
// usa este relógio, nunca o fuso do processo.
const Default = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(Default)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
