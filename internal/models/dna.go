// internal/models/dna.go
package models

// DNAType is the single coarse customer-profile classification.
type DNAType struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}
