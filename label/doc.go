// Package label maps enumeration variants to their wire labels.
//
// Each enumeration owns one [Table]. The table is the single source of truth
// for its labels: most variants take their label from the table's casing
// rule, and the few variants whose wire spelling does not follow the rule
// carry an explicit label:
//
//	label.Define("group-barline-value", label.Lower,
//	    label.E(Yes, "Yes"),
//	    label.E(No, "No"),
//	    label.As(Mensurstrich, "Mensurstrich", "Mensurstrich"),
//	)
//
// Tables are built once, usually at package initialisation, and are never
// mutated afterwards, so they may be read from any number of goroutines.
package label
