package listregex

import (
	"errors"
	"testing"
)

// TestCompile tests which pattern forms compile
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
		wantErr error
	}{
		{"bare literal", 42, nil},
		{"typed slice", []int{1, 2, 3}, nil},
		{"mixed slice", []any{1, Optional(2), 3}, nil},
		{"expr slice", []Expr{Any(), End()}, nil},
		{"combinator", Either(1, 2), nil},
		{"width predicate", func(m *Match[int]) int { return 1 }, nil},
		{"bool predicate", func(m *Match[int]) bool { return true }, nil},
		{"nested", []any{Start(), OneOrMore([]any{1, Optional(2)}), End()}, nil},
		{"wrong element type", "not an int", ErrUnsupportedPattern},
		{"wrong predicate type", func(m *Match[string]) int { return 1 }, ErrUnsupportedPattern},
		{"nil pattern", nil, ErrUnsupportedPattern},
		{"nested bad form", []any{1, 2.5}, ErrUnsupportedPattern},
		{"negative min", Repeat(1, -1, 2), ErrBadRepeat},
		{"max below min", Repeat(1, 3, 2), ErrBadRepeat},
		{"negate variable width", Negate(OneOrMore(1)), ErrVariableWidthNegate},
		{"negate unbalanced either", Negate(Either(1, []any{1, 2})), ErrVariableWidthNegate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile[int](tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Compile() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && re == nil {
				t.Fatal("Compile() returned nil")
			}
			if tt.wantErr != nil {
				var ce *CompileError
				if !errors.As(err, &ce) {
					t.Fatalf("Compile() error = %T, want *CompileError", err)
				}
			}
		})
	}
}

// TestCompileNegateFixedWidth tests the widths Negate accepts
func TestCompileNegateFixedWidth(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
	}{
		{"literal", Negate(1)},
		{"predicate", Negate(func(m *Match[int]) bool { return m.Next() > 0 })},
		{"sequence", Negate([]int{1, 2})},
		{"anchor", Negate(Start())},
		{"balanced either", Negate(Either([]any{1, 2}, []any{3, 4}))},
		{"exact repeat", Negate(Repeat(1, 2, 2))},
		{"nested negate", Negate(Negate(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile[int](tt.pattern); err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
		})
	}
}

// TestMustCompile tests panic on invalid pattern
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile[int]("wrong element type")
}

func TestFixedWidth(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
		want    int
		wantOK  bool
	}{
		{"literal", 1, 1, true},
		{"any", Any(), 1, true},
		{"anchor", End(), 0, true},
		{"lookahead", Lookahead(OneOrMore(1)), 0, true},
		{"sequence", []any{1, Any(), 2}, 3, true},
		{"exact repeat", Repeat([]int{1, 2}, 3, 3), 6, true},
		{"optional", Optional(1), 0, false},
		{"either balanced", Either([]int{1, 2}, []int{3, 4}), 2, true},
		{"either unbalanced", Either(1, []int{1, 2}), 0, false},
		{"matching pair", MatchingPair(1, 2), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := compileForm[int](tt.pattern)
			if err != nil {
				t.Fatalf("compileForm() error = %v", err)
			}
			w, ok := fixedWidth(prog)
			if ok != tt.wantOK || (ok && w != tt.want) {
				t.Errorf("fixedWidth() = %d, %v, want %d, %v", w, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{Any(), "Any"},
		{Repeat(1, 0, 1), "Repeat(0, 1)"},
		{ZeroOrMore(1), "Repeat(0, Unbounded)"},
		{Backreference(2), "Backreference(2)"},
		{MatchingPair(1, 2), "MatchingPair"},
	}

	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
