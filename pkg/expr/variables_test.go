package expr

import (
	stderrors "errors"
	"testing"
)

func TestVariablesLifecycle(t *testing.T) {
	vars := NewVariables()
	n := vars.Add("width", Normal)
	c := vars.AddConstant("unit", 4)

	if _, err := vars.Get(n); !stderrors.Is(err, ErrUnsetVariable) {
		t.Fatalf("fresh normal variable: err = %v, want ErrUnsetVariable", err)
	}
	if err := vars.Set(n, 12); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, err := vars.Get(n); err != nil || v != 12 {
		t.Fatalf("Get = %v, %v; want 12", v, err)
	}

	vars.Prepare()

	if _, err := vars.Get(n); !stderrors.Is(err, ErrUnsetVariable) {
		t.Errorf("normal variable should be unset after Prepare, err = %v", err)
	}
	if v, err := vars.Get(c); err != nil || v != 4 {
		t.Errorf("constant after Prepare = %v, %v; want 4", v, err)
	}
}

func TestVariablesWrongKind(t *testing.T) {
	vars := NewVariables()
	n := vars.Add("n", Normal)
	c := vars.Add("c", Constant)

	tests := []struct {
		name string
		err  error
	}{
		{"set constant via normal path", vars.Set(c, 1)},
		{"set normal via constant path", vars.SetConstant(n, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, ErrWrongVariableKind) {
				t.Errorf("err = %v, want ErrWrongVariableKind", tt.err)
			}
		})
	}

	if err := vars.SetConstant(c, 9); err != nil {
		t.Fatalf("SetConstant: %v", err)
	}
	vars.Prepare()
	if v, _ := vars.Get(c); v != 9 {
		t.Errorf("constant = %v, want 9", v)
	}
}

func TestVariablesUnknownKey(t *testing.T) {
	vars := NewVariables()
	if _, err := vars.Get(3); !stderrors.Is(err, ErrUnknownVariable) {
		t.Errorf("Get: err = %v, want ErrUnknownVariable", err)
	}
	if err := vars.Set(-1, 0); !stderrors.Is(err, ErrUnknownVariable) {
		t.Errorf("Set: err = %v, want ErrUnknownVariable", err)
	}
}

func TestVariablesFind(t *testing.T) {
	vars := NewVariables()
	vars.Add("a", Normal)
	b := vars.Add("b", Constant)
	if k, ok := vars.Find("b"); !ok || k != b {
		t.Errorf("Find(b) = %v, %v", k, ok)
	}
	if _, ok := vars.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
	if vars.Len() != 2 {
		t.Errorf("Len = %d", vars.Len())
	}
}
