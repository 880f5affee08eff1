// Package bookingflow implementa a máquina de estados que conduz o cliente
// pelo agendamento: escolher a data, o horário e então serviço e barbeiro,
// antes de confirmar. A cada passo a disponibilidade é consultada de novo,
// porque outro cliente pode ter reservado o slot no meio do caminho.
package bookingflow

import (
	"context"
	"errors"
	"time"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	"github.com/barbearia-sousa/agenda-api/internal/client"
	"github.com/barbearia-sousa/agenda-api/internal/models"
	"github.com/barbearia-sousa/agenda-api/internal/timezone"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

type Step string

const (
	StepDate             Step = "selecionando_data"
	StepTime             Step = "selecionando_horario"
	StepServiceAndBarber Step = "selecionando_servico_e_barbeiro"
	StepConfirmed        Step = "confirmado"
)

var (
	ErrNotAuthenticated = errors.New("bookingflow: sessão não autenticada")
	ErrSubmitInFlight   = errors.New("bookingflow: envio já em andamento")
	ErrInvalidDate      = errors.New("bookingflow: data inválida")
	ErrPastDate         = errors.New("bookingflow: data já passou")
	ErrSlotUnavailable  = errors.New("bookingflow: horário indisponível")
	ErrUnknownBarber    = errors.New("bookingflow: barbeiro desconhecido")
	ErrUnknownService   = errors.New("bookingflow: serviço desconhecido")
	ErrMissingSelection = errors.New("bookingflow: seleção incompleta")
	ErrWrongStep        = errors.New("bookingflow: operação fora de ordem")
)

// Session é a visão mínima que o fluxo precisa da sessão do cliente.
// *client.Client a satisfaz.
type Session interface {
	IsAuthenticated() bool
}

// BookingAPI cobre as chamadas que o fluxo faz ao servidor.
// *client.Client a satisfaz.
type BookingAPI interface {
	Disponibilidade(ctx context.Context, data, nomeBarbeiro string) ([]client.TimeSlot, error)
	BarbeirosLivres(ctx context.Context, data, horario string) ([]catalog.Barber, error)
	CriarAgendamento(ctx context.Context, in client.CriarAgendamentoInput) (*models.Appointment, error)
}

type Flow struct {
	session Session
	api     BookingAPI
	now     func() time.Time

	step Step

	selectedDate    string
	selectedTime    string
	selectedBarber  string
	selectedService string

	slots         []client.TimeSlot
	barberOptions []catalog.Barber

	busy bool
}

func New(session Session, api BookingAPI) *Flow {
	return &Flow{
		session:       session,
		api:           api,
		now:           timezone.Now,
		step:          StepDate,
		barberOptions: catalog.Barbers(),
	}
}

// WithClock troca a fonte de "agora"; usado em teste.
func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

func (f *Flow) Step() Step                      { return f.step }
func (f *Flow) SelectedDate() string            { return f.selectedDate }
func (f *Flow) SelectedTime() string            { return f.selectedTime }
func (f *Flow) SelectedBarber() string          { return f.selectedBarber }
func (f *Flow) SelectedService() string         { return f.selectedService }
func (f *Flow) Slots() []client.TimeSlot        { return f.slots }
func (f *Flow) BarberOptions() []catalog.Barber { return f.barberOptions }

// SelectDate fixa o dia e carrega a grade de horários. Dias anteriores a
// hoje são recusados antes de qualquer chamada ao servidor.
func (f *Flow) SelectDate(ctx context.Context, data string) error {
	if !f.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if f.step != StepDate {
		return ErrWrongStep
	}
	if !validators.IsDate(data) {
		return ErrInvalidDate
	}
	if data < f.now().Format("2006-01-02") {
		return ErrPastDate
	}

	slots, err := f.api.Disponibilidade(ctx, data, f.selectedBarber)
	if err != nil {
		return err
	}

	f.selectedDate = data
	f.slots = slots
	f.step = StepTime
	return nil
}

// SelectTime fixa o horário dentre os slots carregados. Slots passados ou
// bloqueados não são selecionáveis. Sem barbeiro escolhido ainda, a lista
// de barbeiros é reduzida aos livres naquele horário.
func (f *Flow) SelectTime(ctx context.Context, horario string) error {
	if f.step != StepTime {
		return ErrWrongStep
	}

	var found *client.TimeSlot
	for i := range f.slots {
		if f.slots[i].Horario == horario {
			found = &f.slots[i]
			break
		}
	}
	if found == nil || found.Status != "disponivel" {
		return ErrSlotUnavailable
	}

	if f.selectedBarber == "" {
		livres, err := f.api.BarbeirosLivres(ctx, f.selectedDate, horario)
		if err != nil {
			return err
		}
		if len(livres) == 0 {
			return ErrSlotUnavailable
		}
		f.barberOptions = livres
	}

	f.selectedTime = horario
	f.step = StepServiceAndBarber
	return nil
}

// SelectBarber fixa o barbeiro e reconsulta a grade para ele. Se o horário
// já escolhido estiver tomado para esse barbeiro, a escolha de horário é
// desfeita e o fluxo volta ao passo anterior.
func (f *Flow) SelectBarber(ctx context.Context, nome string) error {
	if f.step != StepServiceAndBarber {
		return ErrWrongStep
	}

	var ok bool
	for _, b := range f.barberOptions {
		if b.Nome == nome {
			ok = true
			break
		}
	}
	if !ok {
		return ErrUnknownBarber
	}

	slots, err := f.api.Disponibilidade(ctx, f.selectedDate, nome)
	if err != nil {
		return err
	}

	for _, s := range slots {
		if s.Horario == f.selectedTime && s.Status != "disponivel" {
			f.slots = slots
			f.selectedTime = ""
			f.selectedBarber = ""
			f.step = StepTime
			return ErrSlotUnavailable
		}
	}

	f.slots = slots
	f.selectedBarber = nome
	return nil
}

func (f *Flow) SelectService(nome string) error {
	if f.step != StepServiceAndBarber {
		return ErrWrongStep
	}
	if _, ok := catalog.FindServiceByNome(nome); !ok {
		return ErrUnknownService
	}
	f.selectedService = nome
	return nil
}

// Back desfaz o passo atual. Voltar da escolha de horário restaura a lista
// completa de barbeiros, já que o filtro por horário deixa de valer.
func (f *Flow) Back() {
	switch f.step {
	case StepTime:
		f.selectedDate = ""
		f.slots = nil
		f.barberOptions = catalog.Barbers()
		f.step = StepDate
	case StepServiceAndBarber:
		f.selectedTime = ""
		f.barberOptions = catalog.Barbers()
		f.step = StepTime
	case StepConfirmed:
		f.reset()
	}
}

// Submit envia o agendamento. Em caso de conflito (outro cliente levou o
// slot) o fluxo permanece no passo atual para o usuário escolher de novo;
// em caso de sucesso as seleções são limpas.
func (f *Flow) Submit(ctx context.Context, observacoes string) (*models.Appointment, error) {
	if f.busy {
		return nil, ErrSubmitInFlight
	}
	if f.step != StepServiceAndBarber {
		return nil, ErrWrongStep
	}
	if f.selectedDate == "" || f.selectedTime == "" || f.selectedBarber == "" || f.selectedService == "" {
		return nil, ErrMissingSelection
	}

	f.busy = true
	defer func() { f.busy = false }()

	ap, err := f.api.CriarAgendamento(ctx, client.CriarAgendamentoInput{
		NomeBarbeiro: f.selectedBarber,
		NomeServico:  f.selectedService,
		Data:         f.selectedDate,
		Horario:      f.selectedTime,
		Observacoes:  observacoes,
	})
	if err != nil {
		return nil, err
	}

	f.step = StepConfirmed
	f.selectedDate = ""
	f.selectedTime = ""
	f.slots = nil
	return ap, nil
}

func (f *Flow) reset() {
	f.selectedDate = ""
	f.selectedTime = ""
	f.selectedBarber = ""
	f.selectedService = ""
	f.slots = nil
	f.barberOptions = catalog.Barbers()
	f.step = StepDate
}
