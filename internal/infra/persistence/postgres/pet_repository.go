package postgres

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

func (repo *petRepository) FindPetByID(ctx context.Context, id string) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

func (repo *petRepository) CountPetsByFamilyCode(ctx context.Context, familyCode string) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("family_code = ?", familyCode).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pets")
	}

	return int(count), nil
}

func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:         data.ID,
		FamilyCode: data.FamilyCode,
		Name:       data.Name,
		Species:    data.Species,
	}
}
