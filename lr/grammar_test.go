package lr

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S'").N("S").End()
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("b").N("A").End()
	r3 := b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 4 {
		t.Errorf("expected grammar to have 4 rules, has %d", g.Size())
	}
	if g.StartSymbol() != "S" {
		t.Errorf("expected start symbol to be S, is %s", g.StartSymbol())
	}
	if !r3.IsEpsilon() || g.Rule(3) != r3 || r3.Serial() != 3 {
		t.Errorf("expected rule 3 to be epsilon-rule A, is %v", g.Rule(3))
	}
	if g.Rule(4) != nil || g.Rule(-1) != nil {
		t.Errorf("expected out-of-range rules to be nil")
	}
	if !g.IsTerminal("a") || !g.IsTerminal(EOF) || g.IsTerminal("A") {
		t.Errorf("terminal classification is broken")
	}
	if !g.IsNonTerminal("S'") || g.IsNonTerminal("b") {
		t.Errorf("non-terminal classification is broken")
	}
	var nonterms []string
	g.EachNonTerminal(func(A Symbol) interface{} {
		nonterms = append(nonterms, string(A))
		return nil
	})
	if strings.Join(nonterms, " ") != "A S S'" {
		t.Errorf("expected non-terminals in lexical order, got %v", nonterms)
	}
}

func TestGrammarRuleString(t *testing.T) {
	b := NewGrammarBuilder("G")
	r0 := b.LHS("S'").N("S").End()
	r1 := b.LHS("S").T("x").T("y").End()
	r2 := b.LHS("S").Epsilon()
	for _, c := range []struct {
		r    *Rule
		text string
	}{
		{r0, "S' ➞ S"}, {r1, "S ➞ x y"}, {r2, "S ➞ ε"},
	} {
		if c.r.String() != c.text {
			t.Errorf("expected rule %q, got %q", c.text, c.r.String())
		}
	}
	rhs := r1.RHS()
	rhs[0] = "z"
	if r1.RHS()[0] != "x" {
		t.Errorf("RHS() must return a copy of the right hand side")
	}
}

func TestGrammarValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Missing")
	b.LHS("S'").N("S").End()
	b.LHS("S").N("X").End()
	if _, err := b.Grammar(); err == nil || !strings.Contains(err.Error(), "X has no rule") {
		t.Errorf("expected error for non-terminal without rule, got %v", err)
	}
	b = NewGrammarBuilder("Clash")
	b.LHS("S'").N("S").End()
	b.LHS("S").T("S").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for terminal on left hand side")
	}
	b = NewGrammarBuilder("NoStart")
	b.LHS("S").T("a").T("b").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for missing augmenting rule")
	}
	if _, err := NewGrammarBuilder("Empty").Grammar(); err == nil {
		t.Errorf("expected error for empty grammar")
	}
}

func TestGrammarFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	build := func(name string, last Symbol) *Grammar {
		b := NewGrammarBuilder(name)
		b.LHS("S'").N("S").End()
		b.LHS("S").T(last).End()
		g, err := b.Grammar()
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	g1, g2, g3 := build("G1", "a"), build("G2", "a"), build("G3", "b")
	if g1.Fingerprint() == "" {
		t.Fatalf("expected a fingerprint")
	}
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected identical rules to share a fingerprint")
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("expected different rules to have different fingerprints")
	}
}

func TestFinishedRulesAreFrozen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S'").N("S").End()
	rb := b.LHS("S").T("a")
	r := rb.End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	rb.T("b")
	rb.End()
	b.LHS("S").T("c").End()
	if r.Len() != 1 || r.LHS() != "S" || r.Serial() != 1 {
		t.Errorf("expected finished rule S ➞ a, is %v", r)
	}
	if g.Size() != 2 || g.IsTerminal("c") {
		t.Errorf("expected grammar to be unaffected by its builder, has %d rules", g.Size())
	}
	if _, err := b.Grammar(); err == nil || !strings.Contains(err.Error(), "already finished") {
		t.Errorf("expected error for modifying a finished rule, got %v", err)
	}
}
