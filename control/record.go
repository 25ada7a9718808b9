package control

// Record is one parsed stanza: an ordered mapping from field name to Value.
// Field names are case-sensitive. Fields keep the position of their first
// occurrence; setting an existing field replaces its value in place.
type Record struct {
	names  []string
	values map[string]Value
}

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether the named field is present.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Fields returns the field names in first-occurrence order.
// The returned slice must not be modified.
func (r Record) Fields() []string {
	return r.names
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.names)
}

// Set stores a field value. A later Set with an existing name overwrites the
// earlier value but keeps the field's original position.
func (r *Record) Set(name string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}
