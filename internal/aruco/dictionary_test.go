package aruco

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index    int
		wantName string
		wantSize int
		wantErr  error
	}{
		{index: 0, wantName: "DICT_4X4_50", wantSize: 50},
		{index: 8, wantName: "DICT_6X6_50", wantSize: 50},
		{index: 11, wantName: "DICT_6X6_1000", wantSize: 1000},
		{index: 16, wantName: "DICT_ARUCO_ORIGINAL", wantSize: 1024},
		{index: 20, wantName: "DICT_APRILTAG_36h11", wantSize: 587},
		{index: -1, wantErr: ErrUnknownDictionary},
		{index: 21, wantErr: ErrUnknownDictionary},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			t.Parallel()

			d, err := Lookup(tt.index)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%d) error = %v, want %v", tt.index, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%d) unexpected error: %v", tt.index, err)
			}
			if d.Name != tt.wantName || d.Size != tt.wantSize {
				t.Errorf("Lookup(%d) = %+v, want %s/%d", tt.index, d, tt.wantName, tt.wantSize)
			}
		})
	}
}

func TestDictionaries_IndexMatchesPosition(t *testing.T) {
	t.Parallel()

	all := Dictionaries()
	if len(all) != 21 {
		t.Fatalf("len(Dictionaries()) = %d, want 21", len(all))
	}
	for i, d := range all {
		if d.Index != i {
			t.Errorf("dictionaries[%d].Index = %d", i, d.Index)
		}
		if d.Bits < 4 || d.Bits > 7 {
			t.Errorf("%s bits = %d, want 4..7", d.Name, d.Bits)
		}
	}

	all[0].Name = "mutated"
	if d, _ := Lookup(0); d.Name != "DICT_4X4_50" {
		t.Error("Dictionaries() must return a copy")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		start, end int
		wantErr    error
	}{
		{"default dictionary pair", 8, 13, 14, nil},
		{"last id", 8, 0, 49, nil},
		{"end past size", 8, 40, 50, ErrIDOutOfRange},
		{"negative start", 0, -1, 3, ErrIDOutOfRange},
		{"unknown dictionary", 99, 0, 1, ErrUnknownDictionary},
		{"large dictionary", 3, 900, 999, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.index, tt.start, tt.end)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMinSidePixels(t *testing.T) {
	t.Parallel()

	d, _ := Lookup(8)
	if got := d.MinSidePixels(); got != 8 {
		t.Errorf("MinSidePixels() = %d, want 8", got)
	}
}

func TestRangeError(t *testing.T) {
	t.Parallel()

	err := Validate(8, 13, 60)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
	if re.ID != 60 || re.Dictionary.Name != "DICT_6X6_50" {
		t.Errorf("RangeError = %+v", re)
	}
	if got := err.Error(); got != "marker id out of range: 60 not in DICT_6X6_50 (0..49)" {
		t.Errorf("Error() = %q", got)
	}
}
