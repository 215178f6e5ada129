// Package optspec provides a declarative means of constructing command-line
// interfaces for programs: named options with defaults, validation rules and
// side-effect hooks, and named arguments bound to handler functions.
//
// The goal of this package, is to provide something that is roughly comparable
// to github.com/spf13/pflag, but oriented around a runtime registry rather
// than bound variables: options and arguments may be declared piecemeal,
// addressed by alias or by any unambiguous prefix of their name, and
// dispatched to handlers without the package ever writing to the terminal or
// terminating the process.
package optspec
