// Package hom implements the homomorphism utilities the category and
// hierarchy packages build on: validation (CheckHom), composition,
// the monicity test, and keys-by-value inversion. A homomorphism here
// is a plain map[graph.ID]graph.ID together with the structural and
// attribute-subsumption contract defined in CheckHom.
package hom
