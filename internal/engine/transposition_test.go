package engine

import "testing"

func TestPackKeyUsesOnlyLogicalBits(t *testing.T) {
	// Margin bits (the 7x7 padding) must never leak into the key.
	withMargin := uint64(1) << 0 // a margin cell, never a logical one
	key := PackKey(withMargin, 0)
	if key != 0 {
		t.Errorf("PackKey leaked a margin bit: got %#x, want 0", key)
	}
}

func TestPackKeyDistinguishesPositions(t *testing.T) {
	a := PackKey(1<<8, 0)    // logical (0,0) occupied
	bb := PackKey(1<<9, 0)   // logical (1,0) occupied
	if a == bb {
		t.Errorf("distinct positions packed to the same key: %#x", a)
	}
}

func TestTranspositionTableGetMiss(t *testing.T) {
	tt := NewTranspositionTable(16)
	if _, ok := tt.Get(5); ok {
		t.Errorf("expected miss on empty table")
	}
}

func TestTranspositionTablePutGet(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Put(5, 3)
	v, ok := tt.Get(5)
	if !ok || v != 3 {
		t.Errorf("got (%d, %v), want (3, true)", v, ok)
	}
}

func TestTranspositionTableCollisionOverwrites(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Put(5, 3)
	tt.Put(21, -2) // same slot (21 % 1 == 5 % 1 == 0), different key

	v, ok := tt.Get(21)
	if !ok || v != -2 {
		t.Errorf("got (%d, %v), want (-2, true)", v, ok)
	}
	if _, ok := tt.Get(5); ok {
		t.Errorf("expected the overwritten key to miss")
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Put(5, 3)
	tt.Clear()
	if _, ok := tt.Get(5); ok {
		t.Errorf("expected miss after Clear")
	}
}

func TestNewTranspositionTableRejectsZeroSize(t *testing.T) {
	tt := NewTranspositionTable(0)
	if tt.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tt.Size())
	}
}
