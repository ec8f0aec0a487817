// Package form turns a schema.FormSchema into a live State: one control per
// field carrying its value, touched and dirty flags, resolved options and the
// set of rules it currently violates. State gates submission on validity and
// hands back an immutable Snapshot of the values. It performs no I/O; option
// sources are resolved synchronously through an options.Resolver at build
// time.
package form
