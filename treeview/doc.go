// Package treeview renders a document as a collapsible text tree.
//
//	▼ Object[2]
//	  name: "litview"
//	  ▶ tags: Array[3]
//
// Open and closed nodes are tracked by path in a [State], which is kept
// across renders.
package treeview
