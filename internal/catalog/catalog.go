// Package catalog define a configuração estática da barbearia: grade de
// horários de atendimento, barbeiros e serviços. Nada aqui é persistido;
// os agendamentos referenciam barbeiro e serviço pelo nome.
package catalog

type Barber struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type Service struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	PrecoCentavos int    `json:"precoCentavos"`
	DuracaoMin    int    `json:"duracaoMin"`
}

// Expediente: 08:00–17:00 em blocos de 30 minutos, com pausa de almoço
// entre 11:30 e 13:00.
var slotTimes = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00",
}

var barbers = []Barber{
	{ID: "luciano", Nome: "Luciano Sousa Barbosa"},
	{ID: "pedro", Nome: "Pedro Henrique Rodrigues"},
	{ID: "joao", Nome: "João Vitor Santana"},
	{ID: "samuel", Nome: "Samuel Torres"},
}

var services = []Service{
	{ID: "corte", Nome: "Corte Masculino", PrecoCentavos: 2500, DuracaoMin: 30},
	{ID: "barba", Nome: "Barba", PrecoCentavos: 1500, DuracaoMin: 20},
	{ID: "corte_barba", Nome: "Corte + Barba", PrecoCentavos: 3500, DuracaoMin: 45},
	{ID: "sobrancelha", Nome: "Sobrancelha", PrecoCentavos: 1000, DuracaoMin: 15},
}

// SlotTimes devolve a grade completa de horários do dia, em ordem.
func SlotTimes() []string {
	out := make([]string, len(slotTimes))
	copy(out, slotTimes)
	return out
}

// IsSlotTime informa se o horário pertence à grade.
func IsSlotTime(horario string) bool {
	for _, s := range slotTimes {
		if s == horario {
			return true
		}
	}
	return false
}

func Barbers() []Barber {
	out := make([]Barber, len(barbers))
	copy(out, barbers)
	return out
}

func FindBarberByID(id string) (Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}

func FindBarberByNome(nome string) (Barber, bool) {
	for _, b := range barbers {
		if b.Nome == nome {
			return b, true
		}
	}
	return Barber{}, false
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func FindServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func FindServiceByNome(nome string) (Service, bool) {
	for _, s := range services {
		if s.Nome == nome {
			return s, true
		}
	}
	return Service{}, false
}
