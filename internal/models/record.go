package models

// Record is one normalized output row. The csv tags give the default header
// used by the CSV exporter.
type Record struct {
	Code        string `csv:"Kode" json:"code" yaml:"code"`
	Description string `csv:"Uraian" json:"description" yaml:"description"`
	PaguRevisi  Cell   `csv:"Pagu Revisi" json:"-" yaml:"-"`
	LockPagu    Cell   `csv:"Lock Pagu" json:"-" yaml:"-"`
	Previous    Cell   `csv:"Realisasi s.d. Periode Lalu" json:"-" yaml:"-"`
	Current     Cell   `csv:"Realisasi Periode Ini" json:"-" yaml:"-"`
	Cumulative  Cell   `csv:"Realisasi s.d. Periode Ini" json:"-" yaml:"-"`
}

// RecordFromRow maps a sliced row onto a Record. Missing columns are empty.
func RecordFromRow(row Row) Record {
	return Record{
		Code:        row.At(0).String(),
		Description: row.At(1).String(),
		PaguRevisi:  row.At(2),
		LockPagu:    row.At(3),
		Previous:    row.At(4),
		Current:     row.At(5),
		Cumulative:  row.At(6),
	}
}

// Amounts returns the five amount cells in column order.
func (r Record) Amounts() []Cell {
	return []Cell{r.PaguRevisi, r.LockPagu, r.Previous, r.Current, r.Cumulative}
}
