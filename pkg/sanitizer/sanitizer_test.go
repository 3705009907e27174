package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ali", "Ali"},
		{"surrounding whitespace", "  Ali  ", "Ali"},
		{"internal run collapses", "Abdul \t\n Vali", "Abdul Vali"},
		{"control characters dropped", "Ali\x00\x07", "Ali"},
		{"only whitespace", "   \t  ", ""},
		{"empty", "", ""},
		{"unicode letters kept", "Günel Əliyeva", "Günel Əliyeva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.in); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already E.164", "+994501234567", "+994501234567"},
		{"local azerbaijani format", "0501234567", "+994501234567"},
		{"spaces and dashes", "+994 50 123-45-67", "+994501234567"},
		{"turkish number with prefix", "+905321234567", "+905321234567"},
		{"unparseable", "not-a-number", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
