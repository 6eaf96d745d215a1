package i18n

import "testing"

func TestT_ResolvesPerLocale(t *testing.T) {
	if got := T(LocaleES, "yes"); got != "Sí" {
		t.Fatalf("es yes: got %q", got)
	}
	if got := T(LocaleEN, "yes"); got != "Yes" {
		t.Fatalf("en yes: got %q", got)
	}
}

func TestT_SessionMessagesLocalized(t *testing.T) {
	if got := T(LocaleES, "retry"); got != "¿Reintentar?" {
		t.Fatalf("es retry: got %q", got)
	}
	if got := T(LocaleEN, "retry"); got != "Retry?" {
		t.Fatalf("en retry: got %q", got)
	}
	if got := T(LocaleES, "errorOccurred"); got != "Ocurrió un error" {
		t.Fatalf("es errorOccurred: got %q", got)
	}
}

func TestT_FallsBackToKey(t *testing.T) {
	if got := T(LocaleEN, "nonexistent.key"); got != "nonexistent.key" {
		t.Fatalf("missing key must fall back to the key itself, got %q", got)
	}
}

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"es", LocaleES, false},
		{"EN", LocaleEN, false},
		{"  es ", LocaleES, false},
		{"", DefaultLocale, false},
		{"fr", "", true},
	}
	for _, tc := range cases {
		got, err := ParseLocale(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLocale(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLocale(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestDisplayToken(t *testing.T) {
	if got := DisplayToken(LocaleES, "cercano_humano"); got != "Cercano y humano" {
		t.Fatalf("known token must use its catalog label, got %q", got)
	}
	if got := DisplayToken(LocaleEN, "expansion_geografica"); got != "Geographic expansion" {
		t.Fatalf("en token label: got %q", got)
	}
	if got := DisplayToken(LocaleES, "tema_desconocido"); got != "Tema Desconocido" {
		t.Fatalf("unknown token must degrade to title case, got %q", got)
	}
}

func TestYesNo(t *testing.T) {
	if got := YesNo(LocaleES, true); got != "Sí" {
		t.Fatalf("got %q", got)
	}
	if got := YesNo(LocaleEN, false); got != "No" {
		t.Fatalf("got %q", got)
	}
}
