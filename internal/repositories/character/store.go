package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
	"github.com/KirkDiggler/spellbook/internal/pkg/clock"
)

const (
	// ListKey holds the JSON array of saved characters
	ListKey = "character-list"
	// LegacyKey held a single character before lists existed. It is read
	// when ListKey is absent and never written.
	LegacyKey = "character-data"

	standardSlotsPrefix = "spell-slots-"
	pactSlotsPrefix     = "warlock-spell-slots-"

	errNameEmpty = "character name cannot be empty"
)

// StandardSlotsKey is the key of a character's standard slot pool
func StandardSlotsKey(name string) string {
	return standardSlotsPrefix + name
}

// PactSlotsKey is the key of a character's pact slot pool
func PactSlotsKey(name string) string {
	return pactSlotsPrefix + name
}

// Config contains configuration for the character repository
type Config struct {
	Store kvstore.Store
	Clock clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	return nil
}

type repository struct {
	store kvstore.Store
	clock clock.Clock
}

// New creates a character repository over a key-value store
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &repository{
		store: cfg.Store,
		clock: c,
	}, nil
}

func (r *repository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	records, err := r.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{Characters: make([]*SavedCharacter, 0, len(records))}
	for _, rec := range records {
		out.Characters = append(out.Characters, fromRecord(rec))
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	records, err := r.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, input.Name)
	if idx < 0 {
		return nil, errors.NotFoundf("character %s not found", input.Name).
			WithMeta("character_name", input.Name)
	}

	slots, err := r.LoadSlots(ctx, LoadSlotsInput(input))
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		Character: fromRecord(records[idx]),
		Standard:  slots.Standard,
		Pact:      slots.Pact,
	}, nil
}

func (r *repository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	name, err := entityID(input.Character)
	if err != nil {
		return nil, err
	}

	records, err := r.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	savedAt := r.clock.Now()
	rec := toRecord(input.Character, savedAt)
	created := false
	if idx := indexOf(records, name); idx >= 0 {
		records[idx] = rec
	} else {
		records = append(records, rec)
		created = true
	}

	listData, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character list")
	}
	standardData, err := json.Marshal(input.Standard.Clone())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal standard slots")
	}
	pactData, err := json.Marshal(input.Pact.Clone())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pact slots")
	}

	err = r.store.Apply(ctx, []kvstore.Op{
		kvstore.SetOp(ListKey, listData),
		kvstore.SetOp(StandardSlotsKey(name), standardData),
		kvstore.SetOp(PactSlotsKey(name), pactData),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save character",
			"character_name", name,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to save character %s", name)
	}

	slog.DebugContext(ctx, "saved character",
		"character_name", name,
		"created", created,
		"count", len(records))

	return &SaveOutput{Created: created, SavedAt: savedAt}, nil
}

func (r *repository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	records, err := r.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, input.Name)
	if idx < 0 {
		return nil, errors.NotFoundf("character %s not found", input.Name).
			WithMeta("character_name", input.Name)
	}
	records = append(records[:idx], records[idx+1:]...)

	listData, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character list")
	}

	err = r.store.Apply(ctx, []kvstore.Op{
		kvstore.SetOp(ListKey, listData),
		kvstore.DeleteOp(StandardSlotsKey(input.Name)),
		kvstore.DeleteOp(PactSlotsKey(input.Name)),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.Name)
	}

	slog.DebugContext(ctx, "deleted character",
		"character_name", input.Name,
		"remaining", len(records))

	return &DeleteOutput{}, nil
}

func (r *repository) LoadSlots(ctx context.Context, input LoadSlotsInput) (*LoadSlotsOutput, error) {
	standard, err := r.loadPool(ctx, StandardSlotsKey(input.Name))
	if err != nil {
		return nil, err
	}
	pact, err := r.loadPool(ctx, PactSlotsKey(input.Name))
	if err != nil {
		return nil, err
	}
	return &LoadSlotsOutput{Standard: standard, Pact: pact}, nil
}

// loadRecords reads the character list, falling back to the legacy single
// record. Unreadable data is logged and treated as empty.
func (r *repository) loadRecords(ctx context.Context) ([]record, error) {
	data, err := r.store.Get(ctx, ListKey)
	if err != nil {
		if errors.IsNotFound(err) {
			return r.loadLegacy(ctx)
		}
		return nil, errors.Wrap(err, "failed to load character list")
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "ignoring malformed character list",
			"key", ListKey,
			"error", err.Error())
		return []record{}, nil
	}

	valid := records[:0]
	for _, rec := range records {
		if strings.TrimSpace(rec.CharacterName) == "" {
			slog.WarnContext(ctx, "skipping unnamed character record",
				"key", ListKey)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, nil
}

func (r *repository) loadLegacy(ctx context.Context) ([]record, error) {
	data, err := r.store.Get(ctx, LegacyKey)
	if err != nil {
		if errors.IsNotFound(err) {
			return []record{}, nil
		}
		return nil, errors.Wrap(err, "failed to load legacy character")
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || strings.TrimSpace(rec.CharacterName) == "" {
		slog.WarnContext(ctx, "ignoring malformed legacy character",
			"key", LegacyKey)
		return []record{}, nil
	}

	slog.WarnContext(ctx, "using legacy character record",
		"key", LegacyKey,
		"character_name", rec.CharacterName)
	return []record{rec}, nil
}

func (r *repository) loadPool(ctx context.Context, key string) (dnd5e.SlotPool, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return dnd5e.SlotPool{}, nil
		}
		return nil, errors.Wrapf(err, "failed to load slot pool %s", key)
	}

	var pool dnd5e.SlotPool
	if err := json.Unmarshal(data, &pool); err != nil {
		slog.WarnContext(ctx, "ignoring malformed slot pool",
			"key", key,
			"error", err.Error())
		return dnd5e.SlotPool{}, nil
	}
	if pool == nil {
		return dnd5e.SlotPool{}, nil
	}
	return pool, nil
}

// entityID returns the key a character entity is stored under
func entityID(e core.Entity) (string, error) {
	if e.GetType() != dnd5e.EntityTypeCharacter {
		return "", errors.InvalidArgumentf("cannot store %s entities", e.GetType())
	}
	id := e.GetID()
	if strings.TrimSpace(id) == "" {
		return "", errors.InvalidArgument(errNameEmpty)
	}
	return id, nil
}

func indexOf[E core.Entity](entities []E, id string) int {
	for i, e := range entities {
		if e.GetID() == id {
			return i
		}
	}
	return -1
}
