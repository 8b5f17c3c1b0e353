package analysis

// Properties holds the derived, deterministic properties of a string.
// They are always re-derivable from the value and never edited on their own.
type Properties struct {
	// Length is the character count (runes, not bytes)
	Length int `json:"length"`

	// IsPalindrome is true if the string, stripped of non-alphanumeric
	// characters and lower-cased, reads the same forwards and backwards
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters is the count of distinct runes in the original string
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of whitespace-separated words
	WordCount int `json:"word_count"`

	// ContentHash is the lowercase-hex SHA-256 of the original string,
	// a stable fingerprint independent of the assigned ID
	ContentHash string `json:"content_hash"`

	// CharacterFrequencyMap maps each distinct character to its occurrence count
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// Record is a single analyzed string with its derived properties and
// metadata. Records are immutable once created.
type Record struct {
	// ID is a ULID that uniquely identifies this record
	ID string `json:"id"`

	// Value is the original string, unique across the collection
	Value string `json:"value"`

	// Properties is derived from Value alone
	Properties Properties `json:"properties"`

	// CreatedAt is the Unix timestamp when the record was created
	CreatedAt int64 `json:"created_at"`
}
