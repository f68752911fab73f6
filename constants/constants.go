// Package constants holds the fixed physical values shared by the folding
// and binding fit models.
package constants

// 理想気体定数, kcal/mol K
const IdealGasConstantKcal float64 = 1.987204118e-3

// 0 degree C の絶対温度, K
const ZeroCelsiusInKelvin float64 = 273.15

// 基準温度, degree C
const TemperatureCelsius float64 = 25.0

// 基準温度, K
const TemperatureKelvin = ZeroCelsiusInKelvin + TemperatureCelsius

// RT, kcal/mol
// (e.g. dG = -RT ln K)
const RT = IdealGasConstantKcal * TemperatureKelvin

// FittingPenalty is returned as the residual of a fit whose parameters are
// out of bounds. It must dominate any ordinary fit error.
const FittingPenalty float64 = 1e10
