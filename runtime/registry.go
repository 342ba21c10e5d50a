package runtime

import (
	"fmt"
	"sort"
	"sync"

	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type memberSet map[domain.SubscriberID]struct{}

type membership struct {
	campaignID uuid.UUID
	sub        contract.Subscriber
}

// Registry tracks which live subscribers belong to which campaign.
// A subscriber is a member of at most one campaign at a time.
type Registry struct {
	mu              sync.RWMutex
	sessions        map[domain.SubscriberID]membership // map subscriber -> campaign + sink
	campaignMembers map[uuid.UUID]memberSet            // map campaign -> subscribers
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:        make(map[domain.SubscriberID]membership),
		campaignMembers: make(map[uuid.UUID]memberSet),
	}
}

// Register adds the subscriber to the campaign entry, creating the entry on the fly.
// Registering twice under the same campaign is a no-op.
func (r *Registry) Register(campaignID uuid.UUID, sub contract.Subscriber) error {
	id := sub.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[id]; ok {
		if current.campaignID == campaignID {
			return nil
		}
		return fmt.Errorf("subscriber %s owned by campaign %s: %w", id, current.campaignID, errors.ErrAlreadyRegistered)
	}

	r.sessions[id] = membership{campaignID: campaignID, sub: sub}
	if _, ok := r.campaignMembers[campaignID]; !ok {
		r.campaignMembers[campaignID] = make(memberSet)
	}
	r.campaignMembers[campaignID][id] = struct{}{}
	return nil
}

// Unregister removes the subscriber from the campaign. It reports whether
// anything was removed; absent subscribers are not an error.
func (r *Registry) Unregister(campaignID uuid.UUID, sub contract.Subscriber) bool {
	id := sub.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[id]
	if !ok || current.campaignID != campaignID {
		return false
	}
	delete(r.sessions, id)

	if members, ok := r.campaignMembers[campaignID]; ok {
		delete(members, id)

		// Prune the entry once the last subscriber is gone
		if len(members) == 0 {
			delete(r.campaignMembers, campaignID)
		}
	}
	return true
}

// SubscribersOf returns a copy of the campaign membership, ordered by subscriber id.
// Later registrations or removals never affect a returned slice.
func (r *Registry) SubscribersOf(campaignID uuid.UUID) []contract.Subscriber {
	r.mu.RLock()
	members, ok := r.campaignMembers[campaignID]
	if !ok {
		r.mu.RUnlock()
		return nil
	}
	ids := lo.Keys(members)
	subs := make(map[domain.SubscriberID]contract.Subscriber, len(ids))
	for _, id := range ids {
		if m, exists := r.sessions[id]; exists {
			subs[id] = m.sub
		}
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return lo.FilterMap(ids, func(id domain.SubscriberID, _ int) (contract.Subscriber, bool) {
		sub, ok := subs[id]
		return sub, ok
	})
}

func (r *Registry) Count(campaignID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.campaignMembers[campaignID])
}

func (r *Registry) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
