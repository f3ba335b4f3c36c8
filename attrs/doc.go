// Package attrs implements the attribute-bag model shared by every
// attributed graph in this module: a mapping from attribute name to a
// set of scalar values, normalized so that a missing key behaves as the
// empty set and a bare scalar behaves as its singleton set.
//
// Normalization happens exactly once, at ingestion (Normalize). Every
// other function in this package — Union, Intersection, Difference,
// Subsumes — assumes its inputs are already normalized and never
// re-normalizes, per the single-ingestion-point design used throughout
// this module.
package attrs
