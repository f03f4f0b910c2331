package meta

import (
	"errors"
	"reflect"
	"testing"
)

func TestAliases(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want []string
	}{
		{
			name: "comma and whitespace separated",
			md:   Metadata{"aliases": "a, b c"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "single alias",
			md:   Metadata{"aliases": "foo"},
			want: []string{"foo"},
		},
		{
			name: "absent field",
			md:   Metadata{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aliases(tt.md)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aliases() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want []string
	}{
		{
			name: "comma separated",
			md:   Metadata{"tags": "log writer, postgresql, database"},
			want: []string{"log writer", "postgresql", "database"},
		},
		{
			name: "absent field",
			md:   Metadata{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tags(tt.md)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortDescription(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want string
	}{
		{
			name: "first sentence across lines",
			md:   Metadata{"description": "This is\na test. More text."},
			want: "This is a test.",
		},
		{
			name: "single sentence",
			md:   Metadata{"description": "Log writer for PostgreSQL."},
			want: "Log writer for PostgreSQL.",
		},
		{
			name: "no terminator joins all lines",
			md:   Metadata{"description": "no punctuation\nat all"},
			want: "no punctuation at all",
		},
		{
			name: "abbreviation does not end sentence",
			md:   Metadata{"description": "Supports e.g. JSON output. And more."},
			want: "Supports e.g. JSON output.",
		},
		{
			name: "exclamation ends sentence",
			md:   Metadata{"description": "Fast! Really fast."},
			want: "Fast!",
		},
		{
			name: "indented continuation lines",
			md:   Metadata{"description": "Reads packets\n   from the wire. Then stops."},
			want: "Reads packets from the wire.",
		},
		{
			name: "absent field",
			md:   Metadata{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortDescription(tt.md)
			if got != tt.want {
				t.Errorf("ShortDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDependencies(t *testing.T) {
	tests := []struct {
		name      string
		md        Metadata
		field     string
		want      map[string]string
		malformed bool
	}{
		{
			name:  "name spec pairs",
			md:    Metadata{"depends": "zeek >=4.0.0 foo *"},
			field: "depends",
			want:  map[string]string{"zeek": ">=4.0.0", "foo": "*"},
		},
		{
			name:  "multiline field",
			md:    Metadata{"depends": "zkg >=2.0\nbar/quux >=1.2.3"},
			field: "depends",
			want:  map[string]string{"zkg": ">=2.0", "bar/quux": ">=1.2.3"},
		},
		{
			name:  "absent field",
			md:    Metadata{},
			field: "depends",
			want:  map[string]string{},
		},
		{
			name:  "alternate field name",
			md:    Metadata{"suggests": "zeek-plugin *"},
			field: "suggests",
			want:  map[string]string{"zeek-plugin": "*"},
		},
		{
			name:      "odd token count",
			md:        Metadata{"depends": "zeek"},
			field:     "depends",
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dependencies(tt.md, tt.field)
			if tt.malformed {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("Dependencies() error = %v, want ErrMalformed", err)
				}
				if got != nil {
					t.Errorf("Dependencies() = %v, want nil on malformed input", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Dependencies() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dependencies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserVars(t *testing.T) {
	got, err := UserVars(Metadata{})
	if err != nil {
		t.Fatalf("UserVars() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("UserVars() = %v, want empty for absent field", got)
	}

	got, err = UserVars(Metadata{"user_vars": `zeek_dist [/usr/local/zeek] "Path to the Zeek distribution"`})
	if err != nil {
		t.Fatalf("UserVars() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "zeek_dist" || got[0].Val != "/usr/local/zeek" {
		t.Errorf("UserVars() = %+v", got)
	}

	if _, err = UserVars(Metadata{"user_vars": "not a valid entry"}); err == nil {
		t.Error("UserVars() expected error for malformed field")
	}
}

func TestFindSentenceEnd(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"A test. More.", 6},
		{"No terminator", -1},
		{"Trailing period.", 15},
		{"Ellipsis... then. done", 16},
		{"e.g. not yet. done", 12},
		{"By J. Doe. done", 9},
		{"version 1.2.3 works. done", 19},
		{"Really? Yes.", 6},
		{"", -1},
	}

	for _, tt := range tests {
		if got := FindSentenceEnd(tt.s); got != tt.want {
			t.Errorf("FindSentenceEnd(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
