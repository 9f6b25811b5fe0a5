package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/vx-labs/mix-engine/model/pb"
)

// Weights is a feature-weight model built for push mixing. Every node
// owns a private slice of the key space: a key is the owner's node id
// plus the feature name, and only the owner ever bumps its version.
// Merging therefore reduces to keeping the highest version per key,
// and two nodes that run one bilateral exchange end up with identical
// entry sets.
type Weights struct {
	id      string
	entries map[string]*pb.WeightDelta
}

func NewWeights(id string) *Weights {
	return &Weights{
		id:      id,
		entries: map[string]*pb.WeightDelta{},
	}
}

func (w *Weights) MixableName() string {
	return "weights"
}

func qualify(owner, feature string) string {
	return fmt.Sprintf("%s|%s", owner, feature)
}

// Observe folds a gradient into the local contribution for a feature.
// Callers hold the model write lock.
func (w *Weights) Observe(feature string, gradient float64) {
	key := qualify(w.id, feature)
	entry, ok := w.entries[key]
	if !ok {
		entry = &pb.WeightDelta{Feature: key}
		w.entries[key] = entry
	}
	entry.Value += gradient
	entry.Version++
}

// Weight sums every node's contribution for a feature.
func (w *Weights) Weight(feature string) float64 {
	suffix := "|" + feature
	total := 0.0
	for key, entry := range w.entries {
		if strings.HasSuffix(key, suffix) {
			total += entry.Value
		}
	}
	return total
}

func (w *Weights) Len() int {
	return len(w.entries)
}

func (w *Weights) sortedKeys() []string {
	keys := make([]string, 0, len(w.entries))
	for key := range w.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetArgument encodes the versions this model already holds.
func (w *Weights) GetArgument() ([]byte, error) {
	argument := &pb.PullArgument{}
	for _, key := range w.sortedKeys() {
		argument.Versions = append(argument.Versions, &pb.FeatureVersion{
			Feature: key,
			Version: w.entries[key].Version,
		})
	}
	payload, err := proto.Marshal(argument)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pull argument")
	}
	return payload, nil
}

// Pull produces the entries the requester lacks, given its argument.
func (w *Weights) Pull(argument []byte) ([]byte, error) {
	request := &pb.PullArgument{}
	if err := proto.Unmarshal(argument, request); err != nil {
		return nil, errors.Wrap(err, "failed to decode pull argument")
	}
	known := map[string]uint64{}
	for _, version := range request.Versions {
		known[version.Feature] = version.Version
	}
	diff := &pb.ModelDiff{}
	for _, key := range w.sortedKeys() {
		entry := w.entries[key]
		if entry.Version > known[key] {
			diff.Deltas = append(diff.Deltas, &pb.WeightDelta{
				Feature: entry.Feature,
				Value:   entry.Value,
				Version: entry.Version,
			})
		}
	}
	payload, err := proto.Marshal(diff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode model diff")
	}
	return payload, nil
}

// Push merges a remote diff, keeping the highest version per key.
func (w *Weights) Push(diff []byte) error {
	update := &pb.ModelDiff{}
	if err := proto.Unmarshal(diff, update); err != nil {
		return errors.Wrap(err, "failed to decode model diff")
	}
	for _, delta := range update.Deltas {
		local, ok := w.entries[delta.Feature]
		if ok && local.Version >= delta.Version {
			continue
		}
		w.entries[delta.Feature] = &pb.WeightDelta{
			Feature: delta.Feature,
			Value:   delta.Value,
			Version: delta.Version,
		}
	}
	return nil
}

// Snapshot encodes the whole model, for persistence.
func (w *Weights) Snapshot() ([]byte, error) {
	snapshot := &pb.ModelDiff{}
	for _, key := range w.sortedKeys() {
		entry := w.entries[key]
		snapshot.Deltas = append(snapshot.Deltas, &pb.WeightDelta{
			Feature: entry.Feature,
			Value:   entry.Value,
			Version: entry.Version,
		})
	}
	return proto.Marshal(snapshot)
}

// Restore replaces the model content with a stored snapshot.
func (w *Weights) Restore(payload []byte) error {
	snapshot := &pb.ModelDiff{}
	if err := proto.Unmarshal(payload, snapshot); err != nil {
		return errors.Wrap(err, "failed to decode model snapshot")
	}
	entries := map[string]*pb.WeightDelta{}
	for _, delta := range snapshot.Deltas {
		entries[delta.Feature] = &pb.WeightDelta{
			Feature: delta.Feature,
			Value:   delta.Value,
			Version: delta.Version,
		}
	}
	w.entries = entries
	return nil
}
