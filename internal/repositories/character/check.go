package character

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
)

const emptyPool = "{}"

// Check inspects the stored list, the legacy record and the slot pools of
// every listed character. With Fix set, the repairs are written in one
// batch: unreadable pools are emptied, bad list entries dropped and a
// legacy record moved into the list.
func (r *repository) Check(ctx context.Context, input CheckInput) (*CheckOutput, error) {
	out := &CheckOutput{}
	var ops []kvstore.Op
	rewriteList := false

	records := []record{}
	listPresent := false
	data, err := r.store.Get(ctx, ListKey)
	switch {
	case err == nil:
		listPresent = true
		out.Checked++
		if err := json.Unmarshal(data, &records); err != nil {
			out.add(ListKey, "malformed character list")
			records = []record{}
			rewriteList = true
		}
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to read character list")
	}

	data, err = r.store.Get(ctx, LegacyKey)
	switch {
	case err == nil:
		out.Checked++
		var rec record
		readable := json.Unmarshal(data, &rec) == nil && strings.TrimSpace(rec.CharacterName) != ""
		switch {
		case listPresent:
			out.add(LegacyKey, "legacy record superseded by the character list")
		case readable:
			out.add(LegacyKey, fmt.Sprintf("legacy record for %s not yet in the character list", rec.CharacterName))
			records = append(records, rec)
			rewriteList = true
		default:
			out.add(LegacyKey, "malformed legacy record")
		}
		ops = append(ops, kvstore.DeleteOp(LegacyKey))
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to read legacy character")
	}

	seen := make(map[string]bool, len(records))
	valid := make([]record, 0, len(records))
	for _, rec := range records {
		id := rec.GetID()
		switch {
		case strings.TrimSpace(id) == "":
			out.add(ListKey, "unnamed character record")
			rewriteList = true
		case seen[id]:
			out.add(ListKey, fmt.Sprintf("duplicate record for %s", id))
			rewriteList = true
		default:
			seen[id] = true
			valid = append(valid, rec)
		}
	}

	for _, rec := range valid {
		id := rec.GetID()
		for _, key := range []string{StandardSlotsKey(id), PactSlotsKey(id)} {
			present, readable, err := r.checkPool(ctx, key)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}
			out.Checked++
			if !readable {
				out.add(key, "malformed slot pool")
				ops = append(ops, kvstore.SetOp(key, []byte(emptyPool)))
			}
		}
	}

	if rewriteList {
		listData, err := json.Marshal(valid)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal character list")
		}
		ops = append([]kvstore.Op{kvstore.SetOp(ListKey, listData)}, ops...)
	}

	if input.Fix && len(ops) > 0 {
		if err := r.store.Apply(ctx, ops); err != nil {
			return nil, errors.Wrap(err, "failed to repair character data")
		}
		out.Fixed = true
	}

	slog.InfoContext(ctx, "checked character data",
		"checked", out.Checked,
		"issues", len(out.Issues),
		"fixed", out.Fixed)

	return out, nil
}

func (r *repository) checkPool(ctx context.Context, key string) (present, readable bool, err error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, false, nil
		}
		return false, false, errors.Wrapf(err, "failed to read slot pool %s", key)
	}
	var pool dnd5e.SlotPool
	return true, json.Unmarshal(data, &pool) == nil, nil
}

func (o *CheckOutput) add(key, problem string) {
	o.Issues = append(o.Issues, Issue{Key: key, Problem: problem})
}
