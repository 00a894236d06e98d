package cli

import "testing"

func TestParseDims(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantN   int
		wantM   int
		wantErr bool
	}{
		{"Default", nil, defaultRows, defaultCols, false},
		{"Square", []string{"3", "3"}, 3, 3, false},
		{"Rectangular", []string{"2", "9"}, 2, 9, false},
		{"RowsExceedCols", []string{"5", "3"}, 0, 0, true},
		{"ZeroRows", []string{"0", "3"}, 0, 0, true},
		{"NegativeCols", []string{"3", "-1"}, 0, 0, true},
		{"NotANumber", []string{"three", "3"}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, m, err := parseDims(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDims(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if n != tt.wantN || m != tt.wantM {
				t.Errorf("parseDims(%v) = (%d, %d), want (%d, %d)", tt.args, n, m, tt.wantN, tt.wantM)
			}
		})
	}
}
