package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Library   DoctorLibraryReport
	Config    DoctorConfigReport
}

type DoctorLibraryReport struct {
	// Override is the value of LUIGI_LIBRARY, if set.
	Override   string
	Candidates []string
	Loaded     string
	Symbols    int
	Error      string
}

type DoctorConfigReport struct {
	File    string
	Created bool
	Error   string

	// FontName is the configured font; FontPath what it resolved to.
	FontName  string
	FontPath  string
	FontError string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)
	sections := []string{
		r.renderLibrary(report.Library),
		r.renderConfig(report.Config),
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderLibrary(lib DoctorLibraryReport) string {
	lines := make([]string, 0, len(lib.Candidates)+4)

	if strings.TrimSpace(lib.Override) != "" {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.Subtle.Render("Override"),
			r.theme.Normal.Render(lib.Override),
			r.theme.Subtle.Render("(LUIGI_LIBRARY)"),
		))
	}

	if lib.Error != "" {
		lines = append(lines, r.status(false, "Not loaded", lib.Error))
	} else {
		lines = append(lines, r.status(true, "Loaded", fmt.Sprintf("%s (%d symbols)", lib.Loaded, lib.Symbols)))
	}

	if len(lib.Candidates) > 0 {
		order := make([]string, 0, len(lib.Candidates))
		for _, c := range lib.Candidates {
			marker := r.theme.Subtle.Render("•")
			if c == lib.Loaded {
				marker = r.theme.SuccessStyle.Render(IconCheck)
			}
			order = append(order, fmt.Sprintf("%s %s", marker, r.theme.Normal.Render(c)))
		}
		lines = append(lines, "", r.theme.Subtle.Render("Search order"), strings.Join(order, "\n"))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Native library", r.theme.Highlight.Render(IconPackage))) + "\n" + body)
}

func (r *DoctorRenderer) renderConfig(cfg DoctorConfigReport) string {
	var line string
	switch {
	case cfg.Error != "":
		line = r.status(false, "Invalid", cfg.Error)
	case cfg.Created:
		line = r.status(true, "Created", cfg.File)
	default:
		line = r.status(true, "OK", cfg.File)
	}

	font := r.theme.Subtle.Render("built-in")
	switch {
	case cfg.FontError != "":
		font = r.theme.WarningStyle.Render(fmt.Sprintf("%s %s (%s)", IconWarning, cfg.FontName, cfg.FontError))
	case cfg.FontPath != "":
		font = r.theme.Normal.Render(cfg.FontPath)
	}
	line += fmt.Sprintf("\n\n%s %s", r.theme.Subtle.Render("Font"), font)

	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Configuration", r.theme.Highlight.Render(IconConfig))) + "\n" + line)
}

func (r *DoctorRenderer) status(ok bool, label, detail string) string {
	icon := IconCheck
	style := r.theme.SuccessStyle
	if !ok {
		icon = IconX
		style = r.theme.ErrorStyle
	}
	badge := r.theme.BadgeMuted.Render(style.Render(label))
	return fmt.Sprintf("%s %s\n  %s", style.Render(icon), badge, r.theme.Subtle.Render(detail))
}
