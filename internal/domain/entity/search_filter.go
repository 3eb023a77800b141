package entity

// ProfessionalFilter is a domain-level filter for querying professionals.
// Used by repository layer to avoid coupling with delivery DTOs.
type ProfessionalFilter struct {
	Role          string // doctor | nurse
	VerifiedOnly  bool
	Specialty     string // substring match (ILIKE)
	City          string // substring match (ILIKE)
	MinExperience *int   // minimum years of experience
}
