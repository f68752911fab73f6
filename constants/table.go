package constants

import (
	"io"

	"github.com/gocarina/gocsv"
)

// Entry is one named row of the constants table.
type Entry struct {
	Name        string  `csv:"name"`
	Value       float64 `csv:"value"`
	Unit        string  `csv:"unit"`
	Description string  `csv:"description"`
}

const (
	NameIdealGasConstantKcal = "IDEAL_GAS_CONSTANT_KCAL"
	NameTemperatureCelsius   = "TEMPERATURE_CELSIUS"
	NameTemperatureKelvin    = "TEMPERATURE_KELVIN"
	NameRT                   = "RT"
	NameFittingPenalty       = "FITTING_PENALTY"
)

/*
定数表を返す。

	Returns:
		定数の一覧, [5]

	Notes:
		呼び出しごとに新しいスライスを返すので、書き換えても定数には影響しない。
*/
func Table() []Entry {
	return []Entry{
		{NameIdealGasConstantKcal, IdealGasConstantKcal, "kcal/(mol K)", "ideal gas constant"},
		{NameTemperatureCelsius, TemperatureCelsius, "degree C", "reference temperature"},
		{NameTemperatureKelvin, TemperatureKelvin, "K", "reference temperature"},
		{NameRT, RT, "kcal/mol", "gas constant times reference temperature"},
		{NameFittingPenalty, FittingPenalty, "-", "residual for out-of-bound fits"},
	}
}

// Names lists the table names in table order.
func Names() []string {
	t := Table()
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}

// Lookup resolves a constant by its table name. Names are case-sensitive.
func Lookup(name string) (float64, bool) {
	for _, e := range Table() {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

/*
定数表をCSVとして書き出す。

	Args:
		w: 出力先

	Returns:
		w の書き込みエラー
*/
func WriteCSV(w io.Writer) error {
	return gocsv.Marshal(Table(), w)
}
