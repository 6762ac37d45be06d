package entities

import (
	"errors"
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "local format", in: "0712345678", want: "254712345678"},
		{name: "international format", in: "254712345678", want: "254712345678"},
		{name: "plus prefix", in: "+254712345678", want: "254712345678"},
		{name: "bare national", in: "712345678", want: "254712345678"},
		{name: "airtel range", in: "0110123456", want: "254110123456"},
		{name: "spaces and dashes", in: "0712-345 678", want: "254712345678"},
		{name: "too short", in: "07123", wantErr: true},
		{name: "too long", in: "25471234567890", wantErr: true},
		{name: "landline prefix", in: "0202345678", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "letters only", in: "not-a-number", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPhoneNumber) {
					t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
