package firestore

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"

	cfs "cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
)

const countAlias = "total"

type petRepository struct {
	client *cfs.Client
}

// NewPetRepository creates a PetRepository backed by the pets collection
func NewPetRepository(client *cfs.Client) repository.PetRepository {
	return &petRepository{client: client}
}

func (repo *petRepository) FindPetByID(ctx context.Context, id string) (*entity.Pet, error) {
	ref := docRef(repo.client, petsCollection, id)
	if ref == nil {
		return nil, repository.ErrPetNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to get pet")
	}

	return toPet(snap.Ref.ID, snap.Data()), nil
}

// CountPetsByFamilyCode uses a server-side count aggregation so no documents are transferred.
func (repo *petRepository) CountPetsByFamilyCode(ctx context.Context, familyCode string) (int, error) {
	query := repo.client.Collection(petsCollection).Where(fieldFamilyCode, "==", familyCode)
	result, err := query.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pets")
	}

	return countFromAggregation(result)
}

func countFromAggregation(result cfs.AggregationResult) (int, error) {
	raw, ok := result[countAlias]
	if !ok {
		return 0, errors.Errorf("aggregation result missing %q", countAlias)
	}

	value, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, errors.Errorf("unexpected aggregation value type %T", raw)
	}

	return int(value.GetIntegerValue()), nil
}

func toPet(id string, data map[string]any) *entity.Pet {
	return &entity.Pet{
		ID:         id,
		FamilyCode: stringField(data, fieldFamilyCode),
		Name:       stringField(data, fieldName),
		Species:    stringField(data, fieldSpecies),
	}
}
