package firestore

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"

	cfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type taskRepository struct {
	client *cfs.Client
}

// NewTaskRepository creates a TaskRepository backed by the pet_tasks collection
func NewTaskRepository(client *cfs.Client) repository.TaskRepository {
	return &taskRepository{client: client}
}

func (repo *taskRepository) FindTasksByFamilyCode(ctx context.Context, familyCode string) ([]*entity.PetTask, error) {
	iter := repo.client.Collection(tasksCollection).
		Where(fieldFamilyCode, "==", familyCode).
		Documents(ctx)
	defer iter.Stop()

	var tasks []*entity.PetTask
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query tasks by family code")
		}

		tasks = append(tasks, toPetTask(snap.Ref.ID, snap.Data()))
	}

	return tasks, nil
}

func toPetTask(id string, data map[string]any) *entity.PetTask {
	return &entity.PetTask{
		ID:         id,
		FamilyCode: stringField(data, fieldFamilyCode),
		PetID:      stringField(data, fieldPetID),
		Title:      stringField(data, fieldTitle),
		Done:       boolField(data, fieldDone),
		DueDate:    timeField(data, fieldDueDate),
	}
}
