package repository

import (
	"context"

	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"gorm.io/gorm"
)

// mirrorColumns are owned by reconciliation and the form generator.
var mirrorColumns = []string{"form_status", "last_form_sent_date", "last_form_created_date"}

type AnimalRepo interface {
	CreateAnimal(ctx context.Context, a *animal.Animal) error
	GetAnimalByID(ctx context.Context, id uint) (animal.Animal, error)
	ListAnimals(ctx context.Context, offset, limit int) ([]animal.Animal, error)
	ListAnimalsForGeneration(ctx context.Context) ([]animal.Animal, error)
	SaveAnimal(ctx context.Context, a *animal.Animal) error
	UpdateAnimalFields(ctx context.Context, id uint, fields map[string]any) error
	DeleteAnimal(ctx context.Context, id uint) error
	FormIDs(ctx context.Context, animalID uint) ([]uint, error)
	WithTx(tx *gorm.DB) AnimalRepo
}

type DBAnimalRepo struct {
	db *gorm.DB
}

func NewAnimalRepo(db *gorm.DB) *DBAnimalRepo {
	return &DBAnimalRepo{
		db: db,
	}
}

func (r *DBAnimalRepo) CreateAnimal(ctx context.Context, a *animal.Animal) error {
	if err := r.db.WithContext(ctx).Omit("Forms", "ResponsibleUser").Create(a).Error; err != nil {
		return err
	}
	a.FormIDs = []uint{}
	return nil
}

func (r *DBAnimalRepo) GetAnimalByID(ctx context.Context, id uint) (animal.Animal, error) {
	var a animal.Animal
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return a, err
	}
	ids, err := r.FormIDs(ctx, a.ID)
	if err != nil {
		return a, err
	}
	a.FormIDs = ids
	return a, nil
}

func (r *DBAnimalRepo) ListAnimals(ctx context.Context, offset, limit int) ([]animal.Animal, error) {
	var animals []animal.Animal
	query := r.db.WithContext(ctx).Order("id asc")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, r.attachFormIDs(ctx, animals)
}

func (r *DBAnimalRepo) ListAnimalsForGeneration(ctx context.Context) ([]animal.Animal, error) {
	var animals []animal.Animal
	err := r.db.WithContext(ctx).
		Where("form_generation_period > ?", 0).
		Order("id asc").
		Find(&animals).Error
	return animals, err
}

// SaveAnimal persists the user-editable columns only.
func (r *DBAnimalRepo) SaveAnimal(ctx context.Context, a *animal.Animal) error {
	return r.db.WithContext(ctx).
		Omit(append([]string{"Forms", "ResponsibleUser"}, mirrorColumns...)...).
		Save(a).Error
}

func (r *DBAnimalRepo) UpdateAnimalFields(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&animal.Animal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAnimal removes the animal together with all of its forms.
func (r *DBAnimalRepo) DeleteAnimal(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("animal_id = ?", id).Delete(&form.Form{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&animal.Animal{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBAnimalRepo) FormIDs(ctx context.Context, animalID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&form.Form{}).
		Where("animal_id = ?", animalID).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBAnimalRepo) attachFormIDs(ctx context.Context, animals []animal.Animal) error {
	if len(animals) == 0 {
		return nil
	}
	animalIDs := make([]uint, len(animals))
	for i := range animals {
		animalIDs[i] = animals[i].ID
		animals[i].FormIDs = []uint{}
	}

	var rows []struct {
		ID       uint
		AnimalID uint
	}
	if err := r.db.WithContext(ctx).Model(&form.Form{}).
		Select("id, animal_id").
		Where("animal_id IN ?", animalIDs).
		Order("id asc").
		Scan(&rows).Error; err != nil {
		return err
	}

	index := make(map[uint]int, len(animals))
	for i := range animals {
		index[animals[i].ID] = i
	}
	for _, row := range rows {
		if i, ok := index[row.AnimalID]; ok {
			animals[i].FormIDs = append(animals[i].FormIDs, row.ID)
		}
	}
	return nil
}

func (r *DBAnimalRepo) WithTx(tx *gorm.DB) AnimalRepo {
	if tx == nil {
		return r
	}
	return &DBAnimalRepo{
		db: tx,
	}
}
