// Package dotpath provides the object accessors of package ir over dotted
// paths. Reads through absent intermediates follow the accessor family:
// Get variants fail, Or variants yield the default, Opt variants report
// absence. Writes create absent intermediate objects.
package dotpath
