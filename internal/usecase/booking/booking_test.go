package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

// fakeRepo guarda tudo em memória, com bloqueios indexados pela tupla
// (barbeiro, data, horário) para reproduzir o índice único do armazenamento.
type fakeRepo struct {
	users        map[string]models.User
	appointments map[string]models.Appointment
	blocked      map[string]models.BlockedSlot

	// hideFromFind faz FindBlockedSlot não enxergar os bloqueios, deixando a
	// colisão estourar no "índice único" de CreateBlockedSlot, o cenário da
	// corrida em que a checagem prévia passa.
	hideFromFind bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[string]models.User),
		appointments: make(map[string]models.Appointment),
		blocked:      make(map[string]models.BlockedSlot),
	}
}

func slotKey(nomeBarbeiro, data, horario string) string {
	return nomeBarbeiro + "|" + data + "|" + horario
}

func (f *fakeRepo) addUser(nome string) models.User {
	u := models.User{ID: uuid.NewString(), NomeCompleto: nome}
	f.users[u.ID] = u
	return u
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, ap := range f.appointments {
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByUser(_ context.Context, usuarioID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UsuarioID == usuarioID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id string) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListBlockedSlots(_ context.Context) ([]models.BlockedSlot, error) {
	out := make([]models.BlockedSlot, 0, len(f.blocked))
	for _, s := range f.blocked {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) ListBlockedSlotsByDate(_ context.Context, data string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, s := range f.blocked {
		if s.Data == data {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlockedSlotsByBarberAndDate(_ context.Context, nomeBarbeiro, data string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, s := range f.blocked {
		if s.NomeBarbeiro == nomeBarbeiro && s.Data == data {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBlockedSlotByID(_ context.Context, id string) (*models.BlockedSlot, error) {
	for _, s := range f.blocked {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindBlockedSlot(_ context.Context, nomeBarbeiro, data, horario string) (*models.BlockedSlot, error) {
	if f.hideFromFind {
		return nil, nil
	}
	s, ok := f.blocked[slotKey(nomeBarbeiro, data, horario)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeRepo) GetOrCreateBlockedSlot(ctx context.Context, nomeBarbeiro, data, horario, motivo string) (*models.BlockedSlot, bool, error) {
	if existing, _ := f.FindBlockedSlot(ctx, nomeBarbeiro, data, horario); existing != nil {
		return existing, false, nil
	}
	s := &models.BlockedSlot{
		NomeBarbeiro: nomeBarbeiro,
		Data:         data,
		Horario:      horario,
		Motivo:       motivo,
	}
	if err := f.CreateBlockedSlot(ctx, s); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (f *fakeRepo) CreateBlockedSlot(_ context.Context, slot *models.BlockedSlot) error {
	key := slotKey(slot.NomeBarbeiro, slot.Data, slot.Horario)
	if _, ok := f.blocked[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	f.blocked[key] = *slot
	return nil
}

func (f *fakeRepo) DeleteBlockedSlotByTuple(_ context.Context, nomeBarbeiro, data, horario string) (bool, error) {
	key := slotKey(nomeBarbeiro, data, horario)
	if _, ok := f.blocked[key]; !ok {
		return false, nil
	}
	delete(f.blocked, key)
	return true, nil
}

func (f *fakeRepo) DeleteBlockedSlotByID(_ context.Context, id string) error {
	for key, s := range f.blocked {
		if s.ID == id {
			delete(f.blocked, key)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) WithTx(_ context.Context, fn func(domain.Repository) error) error {
	// Sem rollback: os casos de uso validam antes de escrever, e os testes
	// que provocam falha conferem o estado esperado explicitamente.
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	return audit.NewDispatcher(audit.New(db))
}
