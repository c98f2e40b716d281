package model

// Path represents a file system path.
type Path string

// Source pairs a Solidity file with its raw contents.
type Source struct {
	Origin  Path
	Content []byte
}

// RunConfig holds the knobs of one generation run.
type RunConfig struct {
	// Mutants is the quota of valid mutants to produce.
	Mutants int
	// Seed feeds the single deterministic random stream owned by the run.
	Seed uint64
	// Types restricts the catalog; empty means all kinds.
	Types []MutationType
	// Contract restricts mutation to one contract declaration when non-empty.
	Contract string
	// Functions restricts mutation to the named function bodies when non-empty.
	Functions []string
	// AttemptsMultiplier bounds the generate/validate loop at
	// Mutants * AttemptsMultiplier attempts.
	AttemptsMultiplier int
	// Output is the directory mutants are persisted under.
	Output Path
	// Solc is the Solidity compiler binary used to parse and validate.
	Solc string
}

// DefaultAttemptsMultiplier is the attempt budget per requested mutant.
const DefaultAttemptsMultiplier = 50
