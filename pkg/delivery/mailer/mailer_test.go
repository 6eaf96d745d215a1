package mailer

import "testing"

func TestNewNotifier_Validation(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Host: "smtp.example.com", Username: "bot@example.com", To: []string{"team@example.com"}}, false},
		{"missing host", Config{Username: "bot@example.com", To: []string{"team@example.com"}}, true},
		{"missing recipients", Config{Host: "smtp.example.com", Username: "bot@example.com"}, true},
		{"missing sender", Config{Host: "smtp.example.com", To: []string{"team@example.com"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNotifier(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewNotifier(%+v) error = %v, wantErr %v", tc.cfg, err, tc.wantErr)
			}
		})
	}
}

func TestNewNotifier_Defaults(t *testing.T) {
	n, err := NewNotifier(Config{Host: "smtp.example.com", Username: "bot@example.com", To: []string{"team@example.com"}})
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}
	if n.from != "bot@example.com" {
		t.Fatalf("sender must default to the username, got %q", n.from)
	}
	if n.dialer.Port != 587 {
		t.Fatalf("port must default to 587, got %d", n.dialer.Port)
	}
}
