package logging

import "testing"

func TestNew(t *testing.T) {
	cases := []struct {
		name       string
		production bool
		level      string
		wantErr    bool
	}{
		{name: "development", level: "debug"},
		{name: "production", production: true, level: "warn"},
		{name: "bad level", level: "loud", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.production, tc.level)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for level %q", tc.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if log == nil {
				t.Fatalf("nil logger")
			}
		})
	}
}
