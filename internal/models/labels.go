package models

// Default period labels of the realisasi report.
const (
	DefaultPreviousLabel   = "Realisasi s.d. Periode Lalu"
	DefaultCurrentLabel    = "Realisasi Periode Ini"
	DefaultCumulativeLabel = "Realisasi s.d. Periode Ini"
)

// Labels names the three realisation columns in exported files and reports.
type Labels struct {
	Previous   string `mapstructure:"previous" yaml:"previous"`
	Current    string `mapstructure:"current" yaml:"current"`
	Cumulative string `mapstructure:"cumulative" yaml:"cumulative"`
}

// DefaultLabels returns the labels used by the standard template.
func DefaultLabels() Labels {
	return Labels{
		Previous:   DefaultPreviousLabel,
		Current:    DefaultCurrentLabel,
		Cumulative: DefaultCumulativeLabel,
	}
}

// WithDefaults fills blank labels from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	if l.Previous == "" {
		l.Previous = d.Previous
	}
	if l.Current == "" {
		l.Current = d.Current
	}
	if l.Cumulative == "" {
		l.Cumulative = d.Cumulative
	}
	return l
}

// AmountHeaders returns the headers of the five amount columns.
func (l Labels) AmountHeaders() [TotalColumns]string {
	return [TotalColumns]string{"Pagu Revisi", "Lock Pagu", l.Previous, l.Current, l.Cumulative}
}

// Header returns the full output header row.
func (l Labels) Header() []string {
	amounts := l.AmountHeaders()
	return append([]string{"Kode", "Uraian"}, amounts[:]...)
}
