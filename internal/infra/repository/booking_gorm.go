package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

var ErrNotFound = gorm.ErrRecordNotFound

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Usuário
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("data ASC, horario ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsByUser(
	ctx context.Context,
	usuarioID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("data ASC, horario ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Horários bloqueados
// --------------------------------------------------

func (r *BookingGormRepository) ListBlockedSlots(
	ctx context.Context,
) ([]models.BlockedSlot, error) {

	var slots []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Order("data ASC, horario ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListBlockedSlotsByDate(
	ctx context.Context,
	data string,
) ([]models.BlockedSlot, error) {

	var slots []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("data = ?", data).
		Order("horario ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListBlockedSlotsByBarberAndDate(
	ctx context.Context,
	nomeBarbeiro string,
	data string,
) ([]models.BlockedSlot, error) {

	var slots []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("nome_barbeiro = ? AND data = ?", nomeBarbeiro, data).
		Order("horario ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) GetBlockedSlotByID(
	ctx context.Context,
	id string,
) (*models.BlockedSlot, error) {

	var slot models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) FindBlockedSlot(
	ctx context.Context,
	nomeBarbeiro string,
	data string,
	horario string,
) (*models.BlockedSlot, error) {

	var slot models.BlockedSlot
	err := r.db.WithContext(ctx).
		Where(
			"nome_barbeiro = ? AND data = ? AND horario = ?",
			nomeBarbeiro, data, horario,
		).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) GetOrCreateBlockedSlot(
	ctx context.Context,
	nomeBarbeiro string,
	data string,
	horario string,
	motivo string,
) (*models.BlockedSlot, bool, error) {

	existing, err := r.FindBlockedSlot(ctx, nomeBarbeiro, data, horario)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if motivo == "" {
		motivo = domain.MotivoAgendamento
	}

	slot := models.BlockedSlot{
		NomeBarbeiro: nomeBarbeiro,
		Data:         data,
		Horario:      horario,
		Motivo:       motivo,
	}

	if err := r.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, false, err
	}

	return &slot, true, nil
}

func (r *BookingGormRepository) CreateBlockedSlot(
	ctx context.Context,
	slot *models.BlockedSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *BookingGormRepository) DeleteBlockedSlotByTuple(
	ctx context.Context,
	nomeBarbeiro string,
	data string,
	horario string,
) (bool, error) {

	slot, err := r.FindBlockedSlot(ctx, nomeBarbeiro, data, horario)
	if err != nil {
		return false, err
	}
	if slot == nil {
		return false, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id = ?", slot.ID).
		Delete(&models.BlockedSlot{}).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (r *BookingGormRepository) DeleteBlockedSlotByID(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.BlockedSlot{}).Error
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *BookingGormRepository) WithTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
