package impl

import (
	"slices"

	"petkeeper/internal/domain/entity"
)

// CollectTokens flattens the members' token lists into a sorted set. Empty
// tokens and any token listed in exclude are dropped; the result does not
// depend on member or token order.
func CollectTokens(members []*entity.UserProfile, exclude ...string) []string {
	seen := make(map[string]struct{})
	for _, member := range members {
		if member == nil {
			continue
		}
		for _, token := range member.FCMTokens {
			if token == "" {
				continue
			}
			seen[token] = struct{}{}
		}
	}

	for _, token := range exclude {
		delete(seen, token)
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)

	return tokens
}

// tokenOwners maps each token back to the members holding it, for follow-up hygiene.
func tokenOwners(members []*entity.UserProfile) map[string][]string {
	owners := make(map[string][]string)
	for _, member := range members {
		if member == nil {
			continue
		}
		for _, token := range member.FCMTokens {
			if token == "" || slices.Contains(owners[token], member.ID) {
				continue
			}
			owners[token] = append(owners[token], member.ID)
		}
	}

	return owners
}
