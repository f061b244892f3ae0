package formats

import (
	"errors"
	"testing"
)

const tetrahedron = `{
	"vertices": [0,0,0, 1,0,0, 0,1,0, 0,0,1],
	"faces": [0,1,2, 0,1,3, 0,2,3, 1,2,3],
	"morphTargets": [
		{"name": "t0", "vertices": [0,0,0, 1,0,0, 0,1,0, 0,0,1]},
		{"name": "t1", "vertices": [0,0,0, 2,0,0, 0,2,0, 0,0,2]}
	],
	"morphColors": [
		{"name": "c0", "colors": [16711680, 16711680, 16711680, 16711680]},
		{"name": "c1", "colors": [255, 255, 255, 255]}
	]
}`

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry([]byte(tetrahedron))
	if err != nil {
		t.Fatalf("ParseGeometry failed: %v", err)
	}
	if g.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", g.VertexCount())
	}
	if len(g.Faces) != 12 {
		t.Errorf("expected 12 face indices, got %d", len(g.Faces))
	}
	if len(g.MorphTargets) != 2 || g.MorphTargets[1].Vertices[3] != 2 {
		t.Errorf("morph targets = %+v", g.MorphTargets)
	}
	if len(g.MorphColours) != 2 || g.MorphColours[1].Colours[0] != 0x0000FF {
		t.Errorf("morph colours = %+v", g.MorphColours)
	}
}

func TestParseGeometryErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"ragged vertices", `{"vertices": [0,0,0, 1,0]}`, ErrLengthMismatch},
		{"ragged faces", `{"vertices": [0,0,0], "faces": [0,0]}`, ErrLengthMismatch},
		{"short morph target", `{"vertices": [0,0,0], "morphTargets": [{"name": "a", "vertices": [1]}]}`, ErrLengthMismatch},
		{"short morph colours", `{"vertices": [0,0,0, 1,1,1], "morphColors": [{"name": "a", "colors": [1]}]}`, ErrLengthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGeometry([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseGeometry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := ParseGeometry([]byte(`{"vertices": [0,0,0], "faces": [0,1,2]}`)); err == nil {
		t.Error("expected error for out of range face index")
	}
}
