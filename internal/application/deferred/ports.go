package deferred

// InstallationLookup es la capacidad mínima que el libro de diferidos necesita
// del catálogo de instalaciones. La existencia la decide el catálogo; aquí solo
// se consulta.
type InstallationLookup interface {
	Exists(companyID, installationCode string) (bool, error)
}

// ConceptLookup es la capacidad mínima sobre el catálogo de conceptos.
// IsDeferredEligible retorna false para códigos inexistentes.
type ConceptLookup interface {
	Exists(companyID, conceptCode string) (bool, error)
	IsDeferredEligible(companyID, conceptCode string) (bool, error)
}
