package compress

import (
	"fmt"

	"github.com/kronosnet/knet/cmn"
)

// Config is the single configure-time record a transport handle passes to
// HandleState.Configure.
type Config struct {
	// Model is the back-end name ("none", "zlib", "lz4", ...).
	Model string
	// Level is a back-end-specific compression level.
	Level int
	// Threshold is the minimum payload size, in bytes, before the caller
	// should attempt compression. 0 selects DefaultCompressThreshold.
	Threshold int
}

// HandleState is the per-handle compression state: the configured
// model/level/threshold, plus the bookkeeping the lock and lifecycle
// manager in lock.go needs to know which models this handle currently
// holds a charge against.
//
// A HandleState is owned by exactly one transport handle and must not be
// shared across handles; its own fields are mutated only by that handle's
// threads, which is why there is no internal lock here — concurrency
// safety for the shared back-end state lives in Registry.
type HandleState struct {
	registry *Registry

	model     uint8
	level     int
	threshold int

	charged [MaxCompressMethods]bool
	states  map[uint8]any // per-model init data, for StatefulAdapter back-ends
}

// NewHandleState constructs per-handle compression state bound to reg. Pass
// DefaultRegistry unless the caller needs an isolated registry (tests).
func NewHandleState(reg *Registry) *HandleState {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &HandleState{registry: reg}
}

func (h *HandleState) state(id uint8) any {
	if h.states == nil {
		return nil
	}
	return h.states[id]
}

func (h *HandleState) setState(id uint8, s any) {
	if h.states == nil {
		h.states = make(map[uint8]any, 1)
	}
	h.states[id] = s
}

func (h *HandleState) clearState(id uint8) {
	delete(h.states, id)
}

// Configure validates and commits a model/level/threshold selection for
// this handle, loading and charging the selected back-end as needed.
func (h *HandleState) Configure(cfg Config) error {
	idx, ok := lookupByName(cfg.Model)
	if !ok {
		return wrapf(ErrInvalidArgument, "unknown compression model %q", cfg.Model)
	}
	row := &h.registry.rows[idx]
	id := row.id

	if id == noneModelID {
		h.model = noneModelID
		h.level = 0
		h.threshold = 0
		return nil
	}

	if !row.builtIn {
		h.registry.log.Errorf("model %s (id=%d) is not built into this binary", row.name, row.id)
		return wrapf(ErrInvalidArgument, "model %s is not built in", row.name)
	}

	release, err := h.registry.ensureInit(h, id, false)
	if err != nil {
		return err
	}
	// Hold the lock ensureInit returned for the remainder of validation:
	// don't release until every failure path below has had a chance to
	// run, then release exactly once.
	adapter := row.adapter
	threshold := cfg.Threshold

	if verr := adapter.ValidateLevel(cfg.Level); verr != nil {
		release()
		h.registry.releaseCharge(h, id)
		h.registry.log.Errorf("model %s: level %d rejected: %v", row.name, cfg.Level, verr)
		return wrapf(ErrInvalidArgument, "model %s: level %d: %v", row.name, cfg.Level, verr)
	}

	if threshold == 0 {
		threshold = DefaultCompressThreshold
		h.registry.log.Infof("model %s: threshold defaulted to %d", row.name, threshold)
	} else if threshold > MaxPacketSize {
		release()
		h.registry.releaseCharge(h, id)
		return wrapf(ErrInvalidArgument, "threshold %d exceeds max packet size %d", threshold, MaxPacketSize)
	}

	h.model = id
	h.level = cfg.Level
	h.threshold = threshold
	release()
	return nil
}

// Model returns the currently configured model id (0 = no compression).
func (h *HandleState) Model() uint8 { return h.model }

// Threshold returns the effective configured threshold.
func (h *HandleState) Threshold() int { return h.threshold }

// Compress is the send-path entry point. The caller (the transport packet
// pipeline) is responsible for comparing the payload length against
// Threshold() and skipping this call for small payloads; Compress itself
// never consults the threshold.
func (h *HandleState) Compress(in []byte) ([]byte, error) {
	if h.model == noneModelID {
		return in, nil
	}
	row := h.registry.row(h.model)
	release, err := h.registry.ensureInit(h, h.model, false)
	if err != nil {
		return nil, err
	}
	defer release()

	out, err := row.adapter.Compress(h.level, in)
	if err != nil {
		return nil, wrapf(ErrCodec, "model %s: %w", row.name, err)
	}
	h.registry.log.Infof("model %s: compressed %s to %s", row.name,
		cmn.B2S(int64(len(in)), 1), cmn.B2S(int64(len(out)), 1))
	return out, nil
}

// Decompress is the receive-path entry point. modelID is the sender-supplied
// wire tag; it is validated against the model table before any load is
// attempted, and the load attempt itself is rate-limited (rateLimit=true)
// so a peer cannot force repeated expensive load attempts by sending
// packets tagged with a model whose back-end is known to be missing or
// broken.
func (h *HandleState) Decompress(modelID uint8, in []byte) ([]byte, error) {
	idx, ok := lookupByID(modelID)
	if !ok {
		h.registry.log.Errorf("decompress: model_id %d exceeds max known id %d", modelID, maxModel)
		return nil, wrapf(ErrInvalidArgument, "unknown model_id %d", modelID)
	}
	row := &h.registry.rows[idx]
	if !row.builtIn {
		h.registry.log.Errorf("decompress: model_id %d (%s) is not built into this binary", modelID, row.name)
		return nil, wrapf(ErrInvalidArgument, "model_id %d (%s) not built in", modelID, row.name)
	}

	release, err := h.registry.ensureInit(h, modelID, true)
	if err != nil {
		return nil, err
	}
	defer release()

	out, err := row.adapter.Decompress(in)
	if err != nil {
		return nil, wrapf(ErrCodec, "model %s: %w", row.name, err)
	}
	return out, nil
}

// Close is the handle finaliser: release every charge this handle ever
// took, unloading any back-end whose refcount drops to zero as a result.
// Safe to call multiple times; idempotent.
func (h *HandleState) Close() {
	for id := uint8(0); id < uint8(len(h.registry.rows)) && int(id) <= MaxCompressMethods; id++ {
		if id == noneModelID {
			continue
		}
		row := h.registry.row(id)
		if row == nil || !row.builtIn {
			continue
		}
		if h.charged[id] || h.state(id) != nil {
			h.registry.releaseCharge(h, id)
		}
	}
}

func (h *HandleState) String() string {
	return fmt.Sprintf("handle(model=%d level=%d threshold=%d)", h.model, h.level, h.threshold)
}
