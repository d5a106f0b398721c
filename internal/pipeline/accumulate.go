package pipeline

import "tdpmerge/internal"

// Accumulator collects merged records keyed by model name. Later sources
// overwrite earlier ones wholesale, but a model keeps the position of its
// first insertion so the serialized table stays stable across runs.
type Accumulator struct {
	records map[string]internal.ProcessorRecord
	order   []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{records: map[string]internal.ProcessorRecord{}}
}

func (a *Accumulator) Put(rec internal.ProcessorRecord) {
	if _, exists := a.records[rec.Model]; !exists {
		a.order = append(a.order, rec.Model)
	}
	a.records[rec.Model] = rec
}

func (a *Accumulator) Get(model string) (internal.ProcessorRecord, bool) {
	rec, ok := a.records[model]
	return rec, ok
}

func (a *Accumulator) Len() int {
	return len(a.order)
}

// Records returns the merged set in insertion order.
func (a *Accumulator) Records() []internal.ProcessorRecord {
	out := make([]internal.ProcessorRecord, 0, len(a.order))
	for _, model := range a.order {
		out = append(out, a.records[model])
	}
	return out
}
