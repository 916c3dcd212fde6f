package repository

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	CreateForm(ctx context.Context, f *form.Form) error
	GetFormByID(ctx context.Context, id uint) (form.Form, error)
	GetFormsByIDs(ctx context.Context, ids []uint) ([]form.Form, error)
	ListFormsByAnimal(ctx context.Context, animalID uint) ([]form.Form, error)
	// GetLatestFormByAnimal returns the form with the highest id, or nil when
	// the animal has none.
	GetLatestFormByAnimal(ctx context.Context, animalID uint) (*form.Form, error)
	SaveForm(ctx context.Context, f *form.Form) error
	DeleteForm(ctx context.Context, id uint) (bool, error)
	ListFormsByStatus(ctx context.Context, status form.FormStatus) ([]form.Form, error)
	ListFormsPendingFill(ctx context.Context, now time.Time) ([]form.Form, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(ctx context.Context, f *form.Form) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *DBFormRepo) GetFormByID(ctx context.Context, id uint) (form.Form, error) {
	var f form.Form
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFormRepo) GetFormsByIDs(ctx context.Context, ids []uint) ([]form.Form, error) {
	forms := []form.Form{}
	if len(ids) == 0 {
		return forms, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListFormsByAnimal(ctx context.Context, animalID uint) ([]form.Form, error) {
	forms := []form.Form{}
	err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("id asc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) GetLatestFormByAnimal(ctx context.Context, animalID uint) (*form.Form, error) {
	var f form.Form
	err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("id desc").First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) SaveForm(ctx context.Context, f *form.Form) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *DBFormRepo) DeleteForm(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&form.Form{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBFormRepo) ListFormsByStatus(ctx context.Context, status form.FormStatus) ([]form.Form, error) {
	forms := []form.Form{}
	err := r.db.WithContext(ctx).Where("form_status = ?", status).Order("id asc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListFormsPendingFill(ctx context.Context, now time.Time) ([]form.Form, error) {
	forms := []form.Form{}
	err := r.db.WithContext(ctx).
		Where("form_status = ? AND control_due_date > ?", form.StatusSent, now).
		Order("id asc").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
