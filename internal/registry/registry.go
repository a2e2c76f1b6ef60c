package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/gift-exchange-service/internal/assign"
	"github.com/spec-kit/gift-exchange-service/internal/domain"
	"github.com/spec-kit/gift-exchange-service/internal/events"
	"github.com/spec-kit/gift-exchange-service/internal/store"
	apperrors "github.com/spec-kit/gift-exchange-service/pkg/util/errorutil"
)

// Pairing is one giver/receiver edge of a draw, by display name. Returned
// only to the organizer.
type Pairing struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Dependencies bundles registry collaborators.
type Dependencies struct {
	Store      store.Store
	Logger     *zap.Logger
	Dispatcher events.Dispatcher
}

// Registry owns the authoritative in-memory state of the exchange group. A
// single mutex serializes every mutation, so a draw never interleaves with a
// join or removal. Mutations persist the candidate snapshot before touching
// memory; a failed write leaves both memory and disk on the previous state.
type Registry struct {
	mu           sync.Mutex
	participants map[string]*domain.Participant
	order        []string
	phase        domain.Phase
	store        store.Store
	logger       *zap.Logger
	dispatcher   events.Dispatcher
}

// New loads the persisted snapshot and builds the registry. A missing
// snapshot yields an empty open group.
func New(ctx context.Context, deps Dependencies) (*Registry, error) {
	snapshot, err := deps.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snapshot = snapshot.Sanitize()

	r := &Registry{
		participants: make(map[string]*domain.Participant, len(snapshot.Participants)),
		order:        make([]string, 0, len(snapshot.Participants)),
		phase:        snapshot.Phase(),
		store:        deps.Store,
		logger:       deps.Logger,
		dispatcher:   deps.Dispatcher,
	}
	for i := range snapshot.Participants {
		p := snapshot.Participants[i]
		if _, exists := r.participants[p.ID]; exists {
			continue
		}
		r.participants[p.ID] = &p
		r.order = append(r.order, p.ID)
	}

	deps.Logger.Info("registry loaded",
		zap.Int("participants", len(r.order)),
		zap.String("phase", string(r.phase)))
	return r, nil
}

// Join registers a participant while the group is open. The snapshot
// including the new record is persisted before the record becomes visible.
func (r *Registry) Join(ctx context.Context, name, preference string) (domain.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Participant{}, apperrors.NewValidationError("name must not be empty", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase.IsClosed() {
		return domain.Participant{}, apperrors.NewAlreadyClosed("assignments are already drawn; joining is closed")
	}

	participant := domain.Participant{
		ID:             uuid.NewString(),
		Name:           name,
		GiftPreference: normalizePreference(preference),
	}

	snapshot := r.snapshotLocked()
	snapshot.Participants = append(snapshot.Participants, participant)
	if err := r.store.Save(ctx, snapshot); err != nil {
		return domain.Participant{}, apperrors.NewInternalError(fmt.Errorf("persist snapshot: %w", err))
	}

	r.participants[participant.ID] = &participant
	r.order = append(r.order, participant.ID)

	r.publish(ctx, events.EventParticipantJoined, participant.ID, events.ParticipantJoinedPayload{Name: participant.Name})
	return participant, nil
}

// Remove deletes a participant while the group is open.
func (r *Registry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase.IsClosed() {
		return apperrors.NewAlreadyClosed("participants cannot be removed after the draw")
	}
	removed, ok := r.participants[id]
	if !ok {
		return apperrors.NewNotFound("participant", map[string]any{"id": id})
	}

	snapshot := domain.Snapshot{Participants: make([]domain.Participant, 0, len(r.order)-1)}
	for _, pid := range r.order {
		if pid == id {
			continue
		}
		snapshot.Participants = append(snapshot.Participants, *r.participants[pid])
	}
	if err := r.store.Save(ctx, snapshot); err != nil {
		return apperrors.NewInternalError(fmt.Errorf("persist snapshot: %w", err))
	}

	delete(r.participants, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.publish(ctx, events.EventParticipantRemoved, id, events.ParticipantRemovedPayload{Name: removed.Name})
	return nil
}

// List returns all participants in join order, assignment state included.
// Privilege is enforced at the transport layer.
func (r *Registry) List() []domain.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked().Participants
}

// Get returns a single participant by identity.
func (r *Registry) Get(id string) (domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return domain.Participant{}, apperrors.NewNotFound("participant", map[string]any{"id": id})
	}
	return *p, nil
}

// Draw runs the one-time assignment. It requires an open group of at least
// two participants, persists every assignment together with the closed flag,
// then commits and closes the group. Exactly one of two concurrent draws can
// succeed.
func (r *Registry) Draw(ctx context.Context) ([]Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase.IsClosed() {
		return nil, apperrors.NewAlreadyClosed("assignments are already drawn")
	}
	if len(r.order) < 2 {
		return nil, apperrors.NewNotEnoughParticipants(len(r.order))
	}

	mapping, err := assign.Derangement(r.order)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	snapshot := domain.Snapshot{
		Participants: make([]domain.Participant, 0, len(r.order)),
		Shuffled:     true,
	}
	for _, id := range r.order {
		p := *r.participants[id]
		receiverID := mapping[id]
		p.AssignedTo = &receiverID
		snapshot.Participants = append(snapshot.Participants, p)
	}
	if err := r.store.Save(ctx, snapshot); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("persist snapshot: %w", err))
	}

	pairings := make([]Pairing, 0, len(r.order))
	for _, id := range r.order {
		receiverID := mapping[id]
		r.participants[id].AssignedTo = &receiverID
		pairings = append(pairings, Pairing{
			Giver:    r.participants[id].Name,
			Receiver: r.participants[receiverID].Name,
		})
	}
	r.phase = domain.PhaseClosed

	r.logger.Info("assignments drawn", zap.Int("participants", len(r.order)))
	r.publish(ctx, events.EventAssignmentsDrawn, "", events.AssignmentsDrawnPayload{Participants: len(r.order)})
	return pairings, nil
}

// Assignment returns who the given participant is giving to. Only the
// recipient's name and preference are exposed, never the identity token.
func (r *Registry) Assignment(id string) (domain.Recipient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return domain.Recipient{}, apperrors.NewNotFound("participant", map[string]any{"id": id})
	}
	if p.AssignedTo == nil {
		return domain.Recipient{}, apperrors.NewAssignmentNotReady()
	}
	receiver, ok := r.participants[*p.AssignedTo]
	if !ok {
		r.logger.Error("recorded recipient does not resolve",
			zap.String("participant_id", id),
			zap.String("assigned_to", *p.AssignedTo))
		return domain.Recipient{}, apperrors.NewAssignmentIncomplete()
	}
	return domain.Recipient{Name: receiver.Name, GiftPreference: receiver.GiftPreference}, nil
}

// Phase reports the current lifecycle phase.
func (r *Registry) Phase() domain.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Registry) snapshotLocked() domain.Snapshot {
	snapshot := domain.Snapshot{
		Participants: make([]domain.Participant, 0, len(r.order)),
		Shuffled:     r.phase.IsClosed(),
	}
	for _, id := range r.order {
		snapshot.Participants = append(snapshot.Participants, *r.participants[id])
	}
	return snapshot
}

func normalizePreference(preference string) *string {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return nil
	}
	return &preference
}

func (r *Registry) publish(ctx context.Context, eventType events.EventType, participantID string, payload any) {
	if r.dispatcher == nil {
		return
	}
	_ = r.dispatcher.Publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		ParticipantID: participantID,
		Timestamp:     time.Now(),
		Payload:       payload,
	})
}
