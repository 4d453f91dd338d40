package i18n

import (
	"slices"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		lang string
		id   string
		want string
	}{
		{"ru", "form.first_label", "АМК1"},
		{"ru", "form.submit", "Визуализировать"},
		{"ru", "notice.copied", "Скопировано в буфер"},
		{"en", "form.error.required", "Required field"},
		{"en", "form.first_label", "АМК1"},
		{"en", "form.second_label", "АМК2"},
		{"de", "form.second_label", "АМК2"},
		{"de", "form.error.required", "Обязательное поле"},
		{"ru", "no.such.message", "no.such.message"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.id, func(t *testing.T) {
			if err := Init(tt.lang); err != nil {
				t.Fatalf("Init(%q): %v", tt.lang, err)
			}
			if got := T(tt.id); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatal(err)
	}
	got := Tf("result.summary", map[string]any{"Length": 4, "Differences": 1, "Identity": 75})
	want := "Length: 4  Differences: 1  Identity: 75%"
	if got != want {
		t.Errorf("Tf = %q, want %q", got, want)
	}
}

func TestLanguages(t *testing.T) {
	if err := Init(DefaultLanguage); err != nil {
		t.Fatal(err)
	}
	langs := Languages()
	for _, want := range []string{"ru", "en"} {
		if !slices.Contains(langs, want) {
			t.Errorf("Languages() = %v, missing %q", langs, want)
		}
	}
}
