package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// CountTokens estimates how many prompt tokens a generated export will cost
// downstream.
func CountTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
