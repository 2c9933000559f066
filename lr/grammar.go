package lr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are compared by value.
type Symbol string

// EOF is the end-of-input marker. Parsers append it to every input.
// For the parse tables, it is an ordinary terminal symbol.
const EOF Symbol = "$"

// Rule is a type for a grammar rule (production)
//
//	LHS ➞ RHS
//
// An empty RHS denotes an epsilon-production.
type Rule struct {
	serial int      // order number of this rule within a grammar
	lhs    Symbol   // symbol on the left hand side
	rhs    []Symbol // symbols on the right hand side
}

// Serial returns the order number of a rule within its grammar. Reduce actions
// refer to rules by this number.
func (r *Rule) Serial() int {
	return r.serial
}

// LHS returns the left hand side symbol of a rule.
func (r *Rule) LHS() Symbol {
	return r.lhs
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the number of symbols of the right hand side of a rule.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for a rule with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(string(r.lhs))
	b.WriteString(" ➞")
	if r.IsEpsilon() {
		b.WriteString(" ε")
	}
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(string(A))
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for an immutable, ordered list of grammar rules.
// Create one with a GrammarBuilder.
type Grammar struct {
	Name         string
	rules        []*Rule
	terminals    *treeset.Set // symbols which never appear on the LHS
	nonterminals *treeset.Set // symbols with at least one rule
}

// Size returns the number of rules of a grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the grammar rule with serial number no, or nil if no such rule exists.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// StartSymbol returns the sole RHS symbol of the augmenting rule 0.
func (g *Grammar) StartSymbol() Symbol {
	return g.rules[0].rhs[0]
}

// IsTerminal returns true if A is a terminal of grammar g. The end marker
// EOF counts as a terminal for every grammar.
func (g *Grammar) IsTerminal(A Symbol) bool {
	return A == EOF || g.terminals.Contains(A)
}

// IsNonTerminal returns true if A is the LHS of at least one rule of grammar g.
func (g *Grammar) IsNonTerminal(A Symbol) bool {
	return g.nonterminals.Contains(A)
}

// EachTerminal iterates over all terminals of a grammar, in lexical order.
func (g *Grammar) EachTerminal(mapper func(A Symbol) interface{}) []interface{} {
	return eachSymbol(g.terminals, mapper)
}

// EachNonTerminal iterates over all non-terminals of a grammar, in lexical order.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol) interface{}) []interface{} {
	return eachSymbol(g.nonterminals, mapper)
}

// EachSymbol iterates over all terminals, then over all non-terminals.
func (g *Grammar) EachSymbol(mapper func(A Symbol) interface{}) []interface{} {
	r := g.EachTerminal(mapper)
	return append(r, g.EachNonTerminal(mapper)...)
}

func eachSymbol(set *treeset.Set, mapper func(A Symbol) interface{}) []interface{} {
	var r []interface{}
	it := set.Iterator()
	for it.Next() {
		r = append(r, mapper(it.Value().(Symbol)))
	}
	return r
}

// Dump is a debugging helper, dumping the rules of a grammar to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: [%s] ::= %v", r.serial, r.lhs, r.rhs)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// Fingerprint returns a hash over the rules of a grammar. Two grammars with
// identical rules in identical order share a fingerprint, regardless of their
// names.
func (g *Grammar) Fingerprint() string {
	sig := grammarSignature{Rules: make([]ruleSignature, len(g.rules))}
	for i, r := range g.rules {
		sig.Rules[i].LHS = string(r.lhs)
		for _, A := range r.rhs {
			sig.Rules[i].RHS = append(sig.Rules[i].RHS, string(A))
		}
	}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}

type grammarSignature struct {
	Rules []ruleSignature
}

type ruleSignature struct {
	LHS string
	RHS []string
}

// We need this for the sets of symbols. It sorts symbols lexically.
func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(string(s1.(Symbol)), string(s2.(Symbol)))
}

func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbolComparator)
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Clients call LHS(…) to start
// a new rule, then append right hand side symbols with N(…) for non-terminals
// and T(…) for terminals, and finish a rule with End() or Epsilon().
//
//	b := lr.NewGrammarBuilder("G")
//	b.LHS("S'").N("S").End()
//	b.LHS("S").T("a").N("S").End()
//	b.LHS("S").Epsilon()
//	g, err := b.Grammar()
type GrammarBuilder struct {
	name  string
	rules []*Rule
	terms []Symbol // symbols referenced as terminals
	nonts []Symbol // symbols referenced as non-terminals
	errs  []error  // misuse of rule builders
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// RuleBuilder is a helper type for appending symbols to a single rule.
// Once a rule is finished with End() or Epsilon(), it may not be changed any more.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
	done bool
}

// LHS starts a new rule with left hand side symbol A.
func (gb *GrammarBuilder) LHS(A Symbol) *RuleBuilder {
	r := &Rule{serial: len(gb.rules), lhs: A}
	return &RuleBuilder{gb: gb, rule: r}
}

// N appends a non-terminal to the RHS of a rule.
func (rb *RuleBuilder) N(A Symbol) *RuleBuilder {
	if rb.finished() {
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, A)
	rb.gb.nonts = append(rb.gb.nonts, A)
	return rb
}

// T appends a terminal to the RHS of a rule.
func (rb *RuleBuilder) T(a Symbol) *RuleBuilder {
	if rb.finished() {
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, a)
	rb.gb.terms = append(rb.gb.terms, a)
	return rb
}

// End finishes a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if rb.finished() {
		return rb.rule
	}
	rb.done = true
	rb.gb.rules = append(rb.gb.rules, rb.rule)
	return rb.rule
}

// Epsilon finishes a rule as an epsilon-production and adds it to the grammar.
// Symbols appended before are discarded.
func (rb *RuleBuilder) Epsilon() *Rule {
	if rb.finished() {
		return rb.rule
	}
	rb.rule.rhs = nil
	return rb.End()
}

// finished records an error if a finished rule is about to be modified.
func (rb *RuleBuilder) finished() bool {
	if rb.done {
		rb.gb.errs = append(rb.gb.errs, fmt.Errorf("rule %d (%v) is already finished", rb.rule.serial, rb.rule))
	}
	return rb.done
}

// Grammar returns the grammar under construction. It checks the grammar for
// consistency first and returns an error if the grammar is not well-formed.
// Checks are performed once, parsers will not re-check a grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := &Grammar{
		Name:         gb.name,
		rules:        append([]*Rule(nil), gb.rules...),
		terminals:    newSymbolSet(),
		nonterminals: newSymbolSet(),
	}
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", gb.name)
	}
	for _, r := range g.rules {
		g.nonterminals.Add(r.lhs)
	}
	errs := append([]error(nil), gb.errs...)
	if start := g.rules[0]; start.Len() != 1 || !g.nonterminals.Contains(start.rhs[0]) {
		errs = append(errs, fmt.Errorf("rule 0 (%v) must derive a single non-terminal start symbol", start))
	}
	for _, A := range gb.nonts {
		if !g.nonterminals.Contains(A) {
			errs = append(errs, fmt.Errorf("non-terminal %s has no rule", A))
		}
	}
	for _, a := range gb.terms {
		if g.nonterminals.Contains(a) {
			errs = append(errs, fmt.Errorf("terminal %s appears on the left hand side of a rule", a))
		} else if a == EOF {
			errs = append(errs, fmt.Errorf("end marker %s may not appear in a rule", EOF))
		}
		g.terminals.Add(a)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("grammar %s is not well-formed: %w", gb.name, errors.Join(errs...))
	}
	tracer().Debugf("grammar %s has %d rules, %d terminals, %d non-terminals", g.Name,
		len(g.rules), g.terminals.Size(), g.nonterminals.Size())
	return g, nil
}
