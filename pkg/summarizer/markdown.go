package summarizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) Option {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the report footer.
func WithVersion(version string) Option {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a formatter. Labels are English unless a
// translator is given.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Mockup Report"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Overview
	fmt.Fprintf(&b, "## %s\n\n", t("Overview"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %d |\n", t("Assets"), len(s.Assets))
	fmt.Fprintf(&b, "| %s | %d |\n", t("Succeeded"), s.Succeeded())
	fmt.Fprintf(&b, "| %s | %d |\n", t("Failed"), s.Failed())
	fmt.Fprintf(&b, "| %s | %s |\n", t("Total Size"), formatBytes(s.TotalBytes()))
	if s.Duration > 0 {
		fmt.Fprintf(&b, "| %s | %.1f s |\n", t("Elapsed"), s.Duration.Seconds())
	}
	b.WriteString("\n")

	// Settings
	st := s.Settings
	if st.OutputDir != "" || st.GradientStart != "" {
		fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		if st.ScreenshotsDir != "" {
			fmt.Fprintf(&b, "| %s | `%s` |\n", t("Screenshots"), st.ScreenshotsDir)
		}
		if st.OutputDir != "" {
			fmt.Fprintf(&b, "| %s | `%s` |\n", t("Output"), st.OutputDir)
		}
		if st.GradientStart != "" {
			fmt.Fprintf(&b, "| %s | `%s` → `%s` |\n", t("Gradient"), st.GradientStart, st.GradientEnd)
		}
		if len(st.Profiles) > 0 {
			fmt.Fprintf(&b, "| %s | %s |\n", t("Profiles"), strings.Join(st.Profiles, ", "))
		}
		if st.Workers > 0 {
			fmt.Fprintf(&b, "| %s | %d |\n", t("Workers"), st.Workers)
		}
		b.WriteString("\n")
	}

	// Assets
	if len(s.Assets) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Assets"))
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n|---|---|---|---|---|\n",
			t("Source"), t("Profile"), t("Output"), t("Size"), t("File Size"))
		for _, a := range s.Assets {
			if a.Failed() {
				fmt.Fprintf(&b, "| %s | %s | %s | - | - |\n", a.Source, a.Profile, t("Failed"))
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | `%s` | %dx%d | %s |\n",
				a.Source, a.Profile, filepath.ToSlash(a.Output), a.Width, a.Height, formatBytes(a.Bytes))
		}
		b.WriteString("\n")
	}

	// Failures
	if s.Failed() > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Failures"))
		for _, a := range s.Assets {
			if a.Failed() {
				fmt.Fprintf(&b, "- **%s** [%s]: %s\n", a.Source, a.Profile, a.Err)
			}
		}
		b.WriteString("\n")
	}

	if f.version != "" {
		fmt.Fprintf(&b, "---\n\n%s\n", fmt.Sprintf(t("Generated by storeshots %s"), f.version))
	}

	return b.String()
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
