package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"empty message", "", false},
		{"exact keyword", "API Error: rate limited", true},
		{"lowercase keyword", "got an api error: something broke", true},
		{"keyword mid-message", "Retrying after API ERROR: 529", true},
		{"no keyword", "All tests pass, task finished.", false},
		{"keyword-like but incomplete", "the API errored out", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message, false).IsError; got != tt.want {
				t.Errorf("Classify(%q).IsError = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassify_WarningIndependentOfContent(t *testing.T) {
	c := Classify("", true)
	if !c.ActiveWarning {
		t.Error("ActiveWarning should pass through")
	}
	if c.IsError {
		t.Error("empty message must never classify as error")
	}

	c = Classify("API Error: boom", false)
	if c.ActiveWarning {
		t.Error("ActiveWarning should stay false")
	}
	if !c.IsError {
		t.Error("expected error classification")
	}
}

func TestClassify_ExtensibleKeywords(t *testing.T) {
	orig := ErrorKeywords
	defer func() { ErrorKeywords = orig }()

	ErrorKeywords = append(ErrorKeywords, "panic:")
	if !Classify("runtime panic: nil deref", false).IsError {
		t.Error("added keyword should classify as error")
	}
}
