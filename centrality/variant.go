// SPDX-License-Identifier: MIT
//
// File: variant.go
// Role: the closed Variant enumeration, its names and labels.

package centrality

import "fmt"

// Variant selects a centrality measure.
type Variant int

// The fixed variant set. Order is the presentation order of Variants().
const (
	Degree Variant = iota
	Eigenvector
	Closeness
	Information
	Betweenness
	CurrentFlowBetweenness
	CommunicabilityBetweenness
	Load
	Subgraph
	Harmonic
	SecondOrder

	variantCount // sentinel, keep last
)

// variantNames are the canonical selectors accepted by ParseVariant.
var variantNames = [variantCount]string{
	Degree:                     "Degree",
	Eigenvector:                "Eigenvector",
	Closeness:                  "Closeness",
	Information:                "Information",
	Betweenness:                "Betweenness",
	CurrentFlowBetweenness:     "CurrentFlowBetweenness",
	CommunicabilityBetweenness: "CommunicabilityBetweenness",
	Load:                       "Load",
	Subgraph:                   "Subgraph",
	Harmonic:                   "Harmonic",
	SecondOrder:                "SecondOrder",
}

// variantLabels are human-readable titles for reports and plots.
var variantLabels = [variantCount]string{
	Degree:                     "Degree Centrality",
	Eigenvector:                "Eigenvector Centrality",
	Closeness:                  "Closeness Centrality",
	Information:                "Information Centrality",
	Betweenness:                "Betweenness Centrality",
	CurrentFlowBetweenness:     "Current Flow Betweenness Centrality",
	CommunicabilityBetweenness: "Communicability Betweenness Centrality",
	Load:                       "Load Centrality",
	Subgraph:                   "Subgraph Centrality",
	Harmonic:                   "Harmonic Centrality",
	SecondOrder:                "Second Order Centrality",
}

// Valid reports whether v is one of the fixed variants.
func (v Variant) Valid() bool { return v >= 0 && v < variantCount }

// String returns the canonical selector, or "Variant(n)" when out of range.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// Label returns the display title, e.g. "Degree Centrality".
func (v Variant) Label() string {
	if !v.Valid() {
		return v.String()
	}

	return variantLabels[v]
}

// Variants lists every variant in presentation order.
func Variants() []Variant {
	out := make([]Variant, variantCount)
	for i := range out {
		out[i] = Variant(i)
	}

	return out
}

// ParseVariant maps a canonical selector to its Variant.
//
// Matching is exact: case variants, surrounding whitespace and display labels
// are all rejected with ErrUnknownVariant.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if s == name {
			return Variant(i), nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrUnknownVariant)
}

// MarshalText implements encoding.TextMarshaler with the canonical selector.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(v), ErrUnknownVariant)
	}

	return []byte(variantNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseVariant.
func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p

	return nil
}
