package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

// TelehealthGormRepository backs the directory, booking and session ports
// with one gorm connection.
type TelehealthGormRepository struct {
	db *gorm.DB
}

func NewTelehealthGormRepository(db *gorm.DB) *TelehealthGormRepository {
	return &TelehealthGormRepository{db: db}
}

// --------------------------------------------------
// Practitioner directory
// --------------------------------------------------

func (r *TelehealthGormRepository) ListPractitioners(
	ctx context.Context,
) ([]models.Practitioner, error) {

	var out []models.Practitioner
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TelehealthGormRepository) GetPractitionerByID(
	ctx context.Context,
	id uint,
) (*models.Practitioner, error) {

	var p models.Practitioner
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *TelehealthGormRepository) Record(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *TelehealthGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Practitioner").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *TelehealthGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Practitioner").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Chat messages
// --------------------------------------------------

func (r *TelehealthGormRepository) SaveChatMessage(
	ctx context.Context,
	msg *models.ChatMessage,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *TelehealthGormRepository) ListChatMessages(
	ctx context.Context,
	sessionID string,
) ([]models.ChatMessage, error) {

	var out []models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
