package optspec

import (
	"github.com/spf13/pflag"
)

// PFlagSet mirrors the declared options onto a *pflag.FlagSet so a registry
// can be embedded into pflag- or cobra-based programs. Boolean options become
// bool flags, list options string slices, and everything else strings.
// Static defaults carry over; function defaults are evaluated once, here.
// Aliases are not mirrored, as pflag has no long-name alias concept.
func (r *Registry) PFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	for _, optName := range r.optOrder {
		o := r.opts[optName]
		switch {
		case o.Bool:
			fs.Bool(optName, truthy(o.Default), o.Description)
		case o.List:
			var def []string
			if o.Default != nil {
				for _, el := range normalize(evalDefault(o.Default)) {
					def = append(def, render(el))
				}
			}
			fs.StringSlice(optName, def, o.Description)
		default:
			var def string
			if o.Default != nil {
				def = render(evalDefault(o.Default))
			}
			fs.String(optName, def, o.Description)
		}
	}
	return fs
}
