package board

import "testing"

func TestTileSetTryAdd(t *testing.T) {
	ts := NewTileSet(0)
	ts, ok := ts.TryAdd(3)
	if !ok || !ts.Has(3) {
		t.Fatalf("expected tile 3 to be added")
	}
	if _, ok := ts.TryAdd(3); ok {
		t.Errorf("re-adding tile 3 should fail")
	}
}

func TestTileSetTryUnion(t *testing.T) {
	a := NewTileSet(0b0011)
	b := NewTileSet(0b1100)
	union, ok := a.TryUnion(b)
	if !ok || union != NewTileSet(0b1111) {
		t.Fatalf("got %v, want disjoint union", union)
	}
	if _, ok := a.TryUnion(a); ok {
		t.Errorf("overlapping union should fail")
	}
}

func TestTileSetComplement(t *testing.T) {
	ts := NewTileSet(0x00FF)
	if got := ts.Complement(); got != NewTileSet(0xFF00) {
		t.Errorf("got %v, want complement", got)
	}
}

func TestTileSetIsFullAndLen(t *testing.T) {
	if FullTileSet.Len() != 16 || !FullTileSet.IsFull() {
		t.Errorf("FullTileSet should have 16 members")
	}
	ts := NewTileSet(0b0101)
	if ts.Len() != 2 || ts.IsFull() {
		t.Errorf("unexpected Len/IsFull for %v", ts)
	}
}

func TestTileSetValuesAscending(t *testing.T) {
	ts := NewTileSet(0b1000_0000_0000_0001 | 0b0000_0000_0000_0010)
	got := ts.Values()
	want := []uint8{0, 1, 15}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestMostPresentColor(t *testing.T) {
	// default partition: current owns 0..7 (few black bits), opponent
	// owns 8..15 (many black bits).
	current, opponent := DefaultPlayers()
	if current.FavoriteColor() != White {
		t.Errorf("0..7 should favor white, got %v", current.FavoriteColor())
	}
	if opponent.FavoriteColor() != Black {
		t.Errorf("8..15 should favor black, got %v", opponent.FavoriteColor())
	}
}

func TestMostPresentColorDependsOnlyOnTileSet(t *testing.T) {
	ts := NewTileSet(0x00FF)
	a := ts.MostPresentColor()
	b := NewPlayer(ts).FavoriteColor()
	if a != b {
		t.Errorf("most present color should be a pure function of the tile set")
	}
}
