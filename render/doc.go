// Package render draws a scored interaction graph.
//
// DOT produces Graphviz source for an undirected spring-layout drawing
// (neato) where each node is filled on a blue-to-red "coolwarm" ramp by its
// min-max normalised score and edges fade with their confidence. SVG turns
// DOT source into an image with the embedded Graphviz of go-graphviz.
package render
