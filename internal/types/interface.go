package types

type Tokenizer interface {
	Tokenize() (*Board, error)
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() BoardStats
}
