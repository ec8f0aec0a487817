// Package validation derives per-field constraint sets from a schema.FieldSchema
// and evaluates them against control values. Every applicable rule runs on
// each evaluation and all violated kinds are reported; ErrorKind order doubles
// as message priority (Required, InvalidFormat, TooShort, BelowMinimum).
package validation
