// Package entity contains the core business objects of the project.
package entity

// Pet is a pet record owned by a family. The fan-out backend never writes pets.
type Pet struct {
	ID         string `json:"id"`
	FamilyCode string `json:"family_code"`
	Name       string `json:"name"`
	Species    string `json:"species"`
}
