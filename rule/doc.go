// Package rule implements the DPO rewrite rule: a span L <- P -> R of
// attributed graphs together with the transformation-authoring
// operations used to build rules incrementally (clone, merge, remove,
// add) and a small line-oriented mini-language for authoring rules as
// text (FromTransform).
//
// L\image(pL) are the pattern's deletions; R\image(pR) are its
// additions; pL may send several P-nodes to one L-node (a clone); pR
// may send several P-nodes to one R-node (a merge).
package rule
