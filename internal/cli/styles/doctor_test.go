package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := NewDoctorRenderer(NewTheme())

	tests := []struct {
		name     string
		report   DoctorReport
		contains []string
		excludes []string
	}{
		{
			name: "healthy",
			report: DoctorReport{
				OverallOK: true,
				Library: DoctorLibraryReport{
					Candidates: []string{"/opt/lib/libluigi.so", "libluigi.so"},
					Loaded:     "/opt/lib/libluigi.so",
					Symbols:    42,
				},
				Config: DoctorConfigReport{File: "/home/u/.config/goluigi/luigi.toml"},
			},
			contains: []string{"OK", "Loaded", "42 symbols", "Search order", "luigi.toml", "built-in"},
			excludes: []string{"Needs attention", "Override"},
		},
		{
			name: "missing library with override",
			report: DoctorReport{
				Library: DoctorLibraryReport{
					Override:   "/tmp/nope.so",
					Candidates: []string{"/tmp/nope.so"},
					Error:      "ffi: luigi shared library not found",
				},
				Config: DoctorConfigReport{Created: true, File: "/tmp/luigi.toml", FontName: "Sans", FontPath: "/fonts/Sans.ttf"},
			},
			contains: []string{"Needs attention", "Not loaded", "LUIGI_LIBRARY", "Created", "/fonts/Sans.ttf"},
		},
		{
			name: "invalid config and font",
			report: DoctorReport{
				Library: DoctorLibraryReport{Loaded: "libluigi.so"},
				Config:  DoctorConfigReport{Error: "font.size must be between 1 and 72", FontName: "Nope", FontError: "no match"},
			},
			contains: []string{"Invalid", "font.size", "Nope", "no match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.report)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
