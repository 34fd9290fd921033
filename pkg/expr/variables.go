package expr

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrUnsetVariable is returned when a Normal variable is read before being
	// written in the current pass.
	ErrUnsetVariable = stderrors.New("variable read before it was set")
	// ErrWrongVariableKind is returned when a write goes through the path of
	// the other variable kind.
	ErrWrongVariableKind = stderrors.New("variable written through the wrong kind")
	// ErrUnknownVariable is returned for a key this store never issued.
	ErrUnknownVariable = stderrors.New("unknown variable")
)

// VarKey identifies a slot in a Variables store.
type VarKey int

// VarKind selects the lifetime of a variable.
type VarKind int

const (
	// Normal variables are reset at the start of every pass.
	Normal VarKind = iota
	// Constant variables keep their value across passes.
	Constant
)

func (k VarKind) String() string {
	if k == Constant {
		return "constant"
	}
	return "normal"
}

// Variable is one numeric slot.
type Variable struct {
	Name        string
	Kind        VarKind
	Initialized bool
	Value       float32
}

// Variables is a flat table of named numeric slots used to share computed
// sub-results between expressions. It must not be used by two update passes
// at once.
type Variables struct {
	slots []Variable
}

// NewVariables returns an empty store.
func NewVariables() *Variables {
	return &Variables{}
}

// Add allocates a new uninitialized slot.
func (v *Variables) Add(name string, kind VarKind) VarKey {
	v.slots = append(v.slots, Variable{Name: name, Kind: kind})
	return VarKey(len(v.slots) - 1)
}

// AddConstant allocates a Constant slot holding value.
func (v *Variables) AddConstant(name string, value float32) VarKey {
	key := v.Add(name, Constant)
	v.slots[key].Initialized = true
	v.slots[key].Value = value
	return key
}

// Len returns the number of slots.
func (v *Variables) Len() int {
	return len(v.slots)
}

// Lookup returns the slot for key.
func (v *Variables) Lookup(key VarKey) (Variable, bool) {
	if key < 0 || int(key) >= len(v.slots) {
		return Variable{}, false
	}
	return v.slots[key], true
}

// Find returns the key of the first slot named name.
func (v *Variables) Find(name string) (VarKey, bool) {
	for i, s := range v.slots {
		if s.Name == name {
			return VarKey(i), true
		}
	}
	return 0, false
}

// Prepare resets every Normal slot to uninitialized. It runs at the start of
// every update pass.
func (v *Variables) Prepare() {
	for i := range v.slots {
		if v.slots[i].Kind == Normal {
			v.slots[i].Initialized = false
			v.slots[i].Value = 0
		}
	}
}

// Get reads a slot. Reading an uninitialized slot returns ErrUnsetVariable.
func (v *Variables) Get(key VarKey) (float32, error) {
	s, ok := v.Lookup(key)
	if !ok {
		return 0, v.wrap(key, ErrUnknownVariable)
	}
	if !s.Initialized {
		return 0, v.wrap(key, ErrUnsetVariable)
	}
	return s.Value, nil
}

// Set writes a Normal slot.
func (v *Variables) Set(key VarKey, value float32) error {
	return v.write(key, value, Normal)
}

// SetConstant writes a Constant slot.
func (v *Variables) SetConstant(key VarKey, value float32) error {
	return v.write(key, value, Constant)
}

func (v *Variables) write(key VarKey, value float32, kind VarKind) error {
	s, ok := v.Lookup(key)
	if !ok {
		return v.wrap(key, ErrUnknownVariable)
	}
	if s.Kind != kind {
		return v.wrap(key, ErrWrongVariableKind)
	}
	v.slots[key].Initialized = true
	v.slots[key].Value = value
	return nil
}

func (v *Variables) wrap(key VarKey, err error) error {
	if s, ok := v.Lookup(key); ok && s.Name != "" {
		return fmt.Errorf("variable %d %q: %w", key, s.Name, err)
	}
	return fmt.Errorf("variable %d: %w", key, err)
}
