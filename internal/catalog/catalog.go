package catalog

import (
	"fmt"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// PHQ9SelfHarmIndex is the designated self-harm item of the depression
// instrument ("thoughts that you would be better off dead..."). The analysis
// generator checks it unconditionally.
const PHQ9SelfHarmIndex = 8

var instruments = map[entity.InstrumentID]*entity.Instrument{}

func init() {
	mustRegister(newPHQ9())
	mustRegister(newDASS21())
	mustRegister(newGAD7())
}

// Get returns the instrument definition for the given id.
func Get(id entity.InstrumentID) (*entity.Instrument, error) {
	inst, ok := instruments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownInstrument, id)
	}
	return inst, nil
}

// MustGet returns a built-in instrument and panics if it is missing.
// The three built-in ids are registered at init, so this is safe for them.
func MustGet(id entity.InstrumentID) *entity.Instrument {
	inst, err := Get(id)
	if err != nil {
		panic(err)
	}
	return inst
}

// ForMode returns the ordered instrument list a session mode administers.
func ForMode(mode entity.SessionMode) ([]*entity.Instrument, error) {
	switch mode {
	case entity.ModeIntegrated:
		return []*entity.Instrument{
			MustGet(entity.InstrumentPHQ9),
			MustGet(entity.InstrumentDASS21),
			MustGet(entity.InstrumentGAD7),
		}, nil
	case entity.ModePHQ9:
		return []*entity.Instrument{MustGet(entity.InstrumentPHQ9)}, nil
	case entity.ModeDASS21:
		return []*entity.Instrument{MustGet(entity.InstrumentDASS21)}, nil
	case entity.ModeGAD7:
		return []*entity.Instrument{MustGet(entity.InstrumentGAD7)}, nil
	default:
		return nil, fmt.Errorf("unknown session mode: %s", mode)
	}
}

// mustRegister validates and registers an instrument. A malformed severity
// table is a programming error, so registration fails fast instead of
// surfacing per scoring call.
func mustRegister(inst *entity.Instrument) {
	if err := validate(inst); err != nil {
		panic(fmt.Sprintf("catalog: invalid instrument %s: %v", inst.ID, err))
	}
	instruments[inst.ID] = inst
}

func validate(inst *entity.Instrument) error {
	if len(inst.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	if len(inst.ResponseScale) == 0 {
		return fmt.Errorf("no response scale")
	}

	for i, q := range inst.Questions {
		if q.Weight < 1 {
			return fmt.Errorf("question %d: weight must be >= 1", i)
		}
		if _, ok := inst.SeverityBands[q.Category]; !ok {
			return fmt.Errorf("question %d: no severity bands for category %q", i, q.Category)
		}
	}

	for sub, bands := range inst.SeverityBands {
		if err := validateBands(bands, inst.MaxRawScore(sub)); err != nil {
			return fmt.Errorf("sub-scale %q: %w", sub, err)
		}
	}
	return nil
}

// validateBands checks that bands are ascending, contiguous and cover
// [0, maxRaw] exactly.
func validateBands(bands []entity.SeverityBand, maxRaw int) error {
	if len(bands) == 0 {
		return fmt.Errorf("no bands")
	}
	if bands[0].MinScore != 0 {
		return fmt.Errorf("first band starts at %d, want 0", bands[0].MinScore)
	}

	for i, b := range bands {
		if b.MinScore > b.MaxScore {
			return fmt.Errorf("band %q: min %d > max %d", b.Label, b.MinScore, b.MaxScore)
		}
		if i > 0 && b.MinScore != bands[i-1].MaxScore+1 {
			return fmt.Errorf("gap or overlap between %q and %q", bands[i-1].Label, b.Label)
		}
	}

	if last := bands[len(bands)-1]; last.MaxScore != maxRaw {
		return fmt.Errorf("last band ends at %d, want %d", last.MaxScore, maxRaw)
	}
	return nil
}
