package ui

import (
	"github.com/umalmyha/customers-console/internal/model"
	"sync"
)

// Snapshot is serializable state of the form, Rendered is set once results table has been rendered
type Snapshot struct {
	Fields   map[string]string `json:"fields" msgpack:"fields"`
	Results  []*model.Customer `json:"results" msgpack:"results"`
	Flash    string            `json:"flash" msgpack:"flash"`
	Rendered bool              `json:"rendered" msgpack:"rendered"`
}

type Form struct {
	mu       sync.RWMutex
	fields   map[string]string
	results  []*model.Customer
	rendered bool
	flash    string
}

func NewForm() *Form {
	return &Form{fields: make(map[string]string)}
}

func FromSnapshot(s Snapshot) *Form {
	f := NewForm()
	for k, v := range s.Fields {
		f.fields[k] = v
	}
	f.results = append(f.results, s.Results...)
	f.rendered = s.Rendered
	f.flash = s.Flash
	return f
}

func (f *Form) Field(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fields[name]
}

func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = value
}

func (f *Form) RenderTable(rows []*model.Customer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(make([]*model.Customer, 0, len(rows)), rows...)
	f.rendered = true
}

func (f *Form) SetFlash(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flash = text
}

func (f *Form) Flash() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.flash
}

func (f *Form) Results() ([]*model.Customer, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]*model.Customer(nil), f.results...), f.rendered
}

func (f *Form) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fields := make(map[string]string, len(Fields))
	for _, name := range Fields {
		fields[name] = f.fields[name]
	}

	return Snapshot{
		Fields:   fields,
		Results:  append([]*model.Customer(nil), f.results...),
		Flash:    f.flash,
		Rendered: f.rendered,
	}
}
