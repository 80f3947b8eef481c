package impl

import (
	"testing"

	"petkeeper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCollectTokens_DeduplicatesAcrossMembers(t *testing.T) {
	members := []*entity.UserProfile{
		profile("m1", "F1", "t1"),
		profile("m2", "F1", "t2", "t1"),
		profile("m3", "F1"),
		nil,
	}

	assert.Equal(t, []string{"t1", "t2"}, CollectTokens(members))
}

func TestCollectTokens_DropsEmptyAndExcludedTokens(t *testing.T) {
	members := []*entity.UserProfile{
		profile("m1", "F1", "", "t1", "shared"),
		profile("m2", "F1", "t2"),
	}

	assert.Equal(t, []string{"t1", "t2"}, CollectTokens(members, "shared", "tc"))
}

func TestCollectTokens_OrderIndependent(t *testing.T) {
	a := profile("m1", "F1", "t3", "t1")
	b := profile("m2", "F1", "t2", "t1")
	c := profile("m3", "F1", "t4")

	want := CollectTokens([]*entity.UserProfile{a, b, c})
	permutations := [][]*entity.UserProfile{
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}

	for _, members := range permutations {
		assert.Equal(t, want, CollectTokens(members))
	}
}

func TestCollectTokens_Idempotent(t *testing.T) {
	members := []*entity.UserProfile{profile("m1", "F1", "t1", "t2", "t1")}

	first := CollectTokens(members)
	second := CollectTokens([]*entity.UserProfile{profile("again", "F1", first...)})

	assert.Equal(t, first, second)
}

func TestCollectTokens_NoMembers(t *testing.T) {
	assert.Empty(t, CollectTokens(nil))
}

func TestTokenOwners(t *testing.T) {
	owners := tokenOwners([]*entity.UserProfile{
		profile("m1", "F1", "t1", "t1"),
		profile("m2", "F1", "t1", "t2"),
	})

	assert.Equal(t, []string{"m1", "m2"}, owners["t1"])
	assert.Equal(t, []string{"m2"}, owners["t2"])
}
