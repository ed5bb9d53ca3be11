package fragility

import "testing"

func TestExtractEval(t *testing.T) {
	cases := []struct {
		comment string
		pawns   *float64
		mate    *int
	}{
		{"[%eval 0.56]", f(0.56), nil},
		{"[%eval -1.20]", f(-1.20), nil},
		{"[%eval +0.33]", f(0.33), nil},
		{"[%eval #3]", nil, i(3)},
		{"[%eval #-4]", nil, i(-4)},
		{"[%clk 0:05:00] [%eval 0.10]", f(0.10), nil},
		{"just a comment", nil, nil},
		{"", nil, nil},
	}
	for _, c := range cases {
		got := ExtractEval(c.comment)
		if c.pawns == nil && c.mate == nil {
			if got != nil {
				t.Fatalf("comment %q expected no eval but got %s", c.comment, got.Score())
			}
			continue
		}
		if got == nil {
			t.Fatalf("comment %q expected an eval but got none", c.comment)
		}
		if c.pawns != nil && (got.Pawns == nil || *got.Pawns != *c.pawns) {
			t.Fatalf("comment %q expected %f pawns but got %v", c.comment, *c.pawns, got.Pawns)
		}
		if c.mate != nil && (got.Mate == nil || *got.Mate != *c.mate) {
			t.Fatalf("comment %q expected mate %d but got %v", c.comment, *c.mate, got.Mate)
		}
	}
}

func TestEvalScoreFormat(t *testing.T) {
	cases := []struct {
		eval EvalScore
		want string
	}{
		{EvalScore{Pawns: f(0.56)}, "+0.56"},
		{EvalScore{Pawns: f(-1.2)}, "-1.20"},
		{EvalScore{Mate: i(3)}, "#3"},
		{EvalScore{Mate: i(-5)}, "#-5"},
		{EvalScore{}, "?"},
	}
	for _, c := range cases {
		if got := c.eval.Score(); got != c.want {
			t.Fatalf("eval format expected %q but got %q", c.want, got)
		}
	}
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }
