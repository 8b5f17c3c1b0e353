package analysis

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Analyze computes a full Record for the given string. The caller is
// responsible for rejecting values that are empty after trimming; Analyze
// is total for any non-empty input.
func Analyze(value string) (Record, error) {
	id, err := generateULID()
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:         id,
		Value:      value,
		Properties: Derive(value),
		CreatedAt:  time.Now().Unix(),
	}, nil
}

// Derive computes the properties of a string. Pure: no I/O, no state.
func Derive(value string) Properties {
	sum := sha256.Sum256([]byte(value))

	return Properties{
		Length:                utf8.RuneCountInString(value),
		IsPalindrome:          IsPalindrome(value),
		UniqueCharacters:      countUniqueRunes(value),
		WordCount:             len(strings.Fields(value)),
		ContentHash:           hex.EncodeToString(sum[:]),
		CharacterFrequencyMap: frequencyMap(value),
	}
}

// IsPalindrome reports whether the string reads the same forwards and
// backwards after removing all non-alphanumeric characters and
// lower-casing. A string that is empty after cleaning is a palindrome.
func IsPalindrome(value string) bool {
	cleaned := make([]rune, 0, utf8.RuneCountInString(value))
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, unicode.ToLower(r))
		}
	}

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// countUniqueRunes counts distinct runes in the original (uncleaned) string.
func countUniqueRunes(value string) int {
	seen := make(map[rune]struct{})
	for _, r := range value {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// frequencyMap counts occurrences of each rune, keyed by the rune as a string.
func frequencyMap(value string) map[string]int {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}
	return freq
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
