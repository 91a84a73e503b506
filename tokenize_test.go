package mindtext

import (
	"reflect"
	"testing"
)

func TestReviewTokenizer(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"", []string{}, "Empty"},
		{"Great movie!", []string{"great", "movie"}, "Punctuation stripped"},
		{"It is an OK film", []string{"film"}, "Tokens of two characters or fewer dropped"},
		{"self-indulgent", []string{"self", "indulgent"}, "Hyphen splits"},
		{"don't", []string{"don"}, "Apostrophe splits"},
		{"  WONDERFUL\tand\nmoving  ", []string{"wonderful", "and", "moving"}, "Whitespace runs"},
		{"snake_case 2024", []string{"snake_case", "2024"}, "Underscore and digits are word characters"},
		{"बहुत अच्छा", []string{}, "Devanagari is blanked out"},
	}

	tokenizer := NewReviewTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tokenizer.Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Text: %q\nExpected: %v\nGot: %v", tt.text, tt.want, got)
			}
		})
	}
}

func TestJournalTokenizer(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"I am happy.", []string{"am", "happy."}, "Punctuation kept, single characters dropped"},
		{"  Calm  ", []string{"calm"}, "Trimmed and lowercased"},
		{"मैं खुश हूं", []string{"मैं", "खुश", "हूं"}, "Devanagari kept"},
		{"a b c", nil, "Only single characters"},
	}

	tokenizer := NewJournalTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tokenizer.Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Text: %q\nExpected: %v\nGot: %v", tt.text, tt.want, got)
			}
		})
	}
}

func TestRuleTokenizerOptions(t *testing.T) {
	tokenizer := NewRuleTokenizer()
	got := tokenizer.Tokenize("A b, C!")
	want := []string{"a", "b,", "c!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Default tokenizer\nExpected: %v\nGot: %v", want, got)
	}

	tokenizer = NewRuleTokenizer(UsingMinLength(3), UsingPunctuationStripping(true))
	got = tokenizer.Tokenize("Tiny words, longer ones!")
	want = []string{"tiny", "words", "longer", "ones"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Min length 3\nExpected: %v\nGot: %v", want, got)
	}
}

func TestLowerText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"HELLO", "hello"},
		{"ÉCOLE", "école"},
		{"मैं", "मैं"},
	}
	for _, tt := range tests {
		if got := lowerText(tt.in); got != tt.want {
			t.Errorf("lowerText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
