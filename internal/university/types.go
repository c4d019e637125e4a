package university

// --- UseCase Inputs ---

type DetailsInput struct {
	Name string
}

// --- UseCase Outputs ---

type DetailsOutput struct {
	Name    string
	Details string
	Cached  bool
}

// MaxNameLen bounds a university name lookup.
const MaxNameLen = 200
