package candidates

import "testing"

func TestExtractName(t *testing.T) {
	cases := []struct {
		label string
		in    string
		want  string
	}{
		{label: "plain label", in: "Name: Asha Devi", want: "Asha Devi"},
		{label: "lowercase label", in: "name: Asha Devi", want: "Asha Devi"},
		{label: "uppercase label", in: "NAME: Asha Devi", want: "Asha Devi"},
		{label: "label mid-document", in: "GOVT OF INDIA\nName: Asha Devi\nDOB: 12/03/1990", want: "Asha Devi"},
		{label: "stops at newline", in: "Name: Ramesh Kumar\nDOB: 12/03/1990", want: "Ramesh Kumar"},
		{label: "trims trailing spaces", in: "Name:   Ramesh Kumar   ", want: "Ramesh Kumar"},
		{label: "first match wins", in: "Name: Asha Devi\nName: Someone Else", want: "Asha Devi"},
		{label: "no label", in: "GOVT OF INDIA\nDOB: 12/03/1990", want: NameNotFound},
		{label: "empty input", in: "", want: NameNotFound},
		{label: "label without value", in: "Name:\nDOB: 12/03/1990", want: NameNotFound},
	}

	for _, tc := range cases {
		if got := ExtractName(tc.in); got != tc.want {
			t.Errorf("%s: ExtractName(%q) = %q, want %q", tc.label, tc.in, got, tc.want)
		}
	}
}
