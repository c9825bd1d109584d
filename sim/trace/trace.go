package trace

// Trace collects records in the order the simulator produced them.
type Trace struct {
	Records []Record
}

// New creates a Trace ready for recording.
func New() *Trace {
	return &Trace{Records: make([]Record, 0)}
}

// RecordSnapshot appends the contents of both locations.
// The slices are copied so later mutation by the caller does not leak into the trace.
func (t *Trace) RecordSnapshot(step int, origin, destination []string) {
	t.Records = append(t.Records, Record{
		Kind:        KindSnapshot,
		Step:        step,
		Origin:      append([]string{}, origin...),
		Destination: append([]string{}, destination...),
	})
}

// RecordCrossing appends a crossing of one or two entities with their combined weight.
func (t *Trace) RecordCrossing(step int, movers []string, load int) {
	t.Records = append(t.Records, Record{
		Kind:   KindCrossing,
		Step:   step,
		Movers: append([]string{}, movers...),
		Load:   load,
	})
}

// RecordReturn appends a single entity sent back to origin.
func (t *Trace) RecordReturn(step int, name string, weight int) {
	t.Records = append(t.Records, Record{
		Kind:   KindReturn,
		Step:   step,
		Movers: []string{name},
		Load:   weight,
	})
}

// Len returns the number of records.
func (t *Trace) Len() int {
	return len(t.Records)
}

// Lines renders every record, one line per record.
func (t *Trace) Lines() []string {
	lines := make([]string, len(t.Records))
	for i, r := range t.Records {
		lines[i] = r.String()
	}
	return lines
}

// Last returns the most recent record of the given kind.
func (t *Trace) Last(kind RecordKind) (Record, bool) {
	for i := len(t.Records) - 1; i >= 0; i-- {
		if t.Records[i].Kind == kind {
			return t.Records[i], true
		}
	}
	return Record{}, false
}
