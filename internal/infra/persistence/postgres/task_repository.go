package postgres

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) FindTasksByFamilyCode(ctx context.Context, familyCode string) ([]*entity.PetTask, error) {
	var models []*model.PetTaskModel
	err := repo.db.WithContext(ctx).
		Where("family_code = ?", familyCode).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tasks by family code")
	}

	tasks := make([]*entity.PetTask, 0, len(models))
	for _, taskM := range models {
		tasks = append(tasks, toPetTaskDomain(taskM))
	}

	return tasks, nil
}

func toPetTaskDomain(data *model.PetTaskModel) *entity.PetTask {
	if data == nil {
		return nil
	}

	return &entity.PetTask{
		ID:         data.ID,
		FamilyCode: data.FamilyCode,
		PetID:      data.PetID,
		Title:      data.Title,
		Done:       data.Done,
		DueDate:    data.DueDate,
	}
}
