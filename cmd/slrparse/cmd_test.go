package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/shiftreduce/lang/minic"
)

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.cli")
	defer teardown()
	//
	p, err := minic.Parser()
	if err != nil {
		t.Fatal(err)
	}
	root, err := parse(p, "vtype id semi")
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledTree(root)
	if len(ll) != 6 {
		t.Fatalf("expected 6 list items, got %d", len(ll))
	}
	levels := []int{0, 1, 2, 2, 2, 1}
	for i, item := range ll {
		if item.Level != levels[i] {
			t.Errorf("item #%d (%s): expected level %d, is %d", i, item.Text, levels[i], item.Level)
		}
	}
	if ll[2].Text != "vtype (0…1)" {
		t.Errorf("expected terminal item with span, got %q", ll[2].Text)
	}
	if _, err := parse(p, "vtype vtype"); err == nil {
		t.Errorf("expected input to be rejected")
	}
}

func TestListTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.cli")
	defer teardown()
	//
	table, err := minic.Table()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	listTable(table, &b)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != table.EntryCount()+1 {
		t.Errorf("expected %d lines, got %d", table.EntryCount()+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "# 76 states") {
		t.Errorf("unexpected header %q", lines[0])
	}
}
