// Package pqdif provides a pure Go implementation of the Power Quality Data
// Interchange Format (PQDIF, IEEE 1159.3-2003): a chained, tagged-binary
// container used to exchange voltage, current, power, and energy
// measurements between power-quality instruments and applications.
//
// The package exposes a physical/logical two-layer codec: Parser walks a
// byte stream record by record and hands back a sequence of Observation
// records associated with the DataSource and MonitorSettings in force at
// the time they were recorded; Writer does the inverse, serializing
// Container/DataSource/MonitorSettings/Observation records back to bytes.
package pqdif
