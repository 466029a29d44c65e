package analyzer

import (
	"reflect"
	"testing"

	"cvrobo/internal/types"
)

func TestExtractContacts(t *testing.T) {
	contact := ExtractContacts(sampleResume)

	want := types.ContactInfo{
		Name:     "Jane Smith",
		Email:    "jane.smith@example.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "linkedin.com/in/janesmith",
		GitHub:   "github.com/janesmith",
	}
	if !reflect.DeepEqual(contact, want) {
		t.Errorf("ExtractContacts() = %+v, want %+v", contact, want)
	}
}

func TestExtractContactsFields(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.ContactInfo
	}{
		{
			name: "no contact information",
			text: "Summary\nA resume with nothing to extract here.",
			want: types.ContactInfo{},
		},
		{
			name: "portfolio url",
			text: "Jane Smith\njanesmith.dev\njane@example.com",
			want: types.ContactInfo{
				Name:      "Jane Smith",
				Email:     "jane@example.com",
				Portfolio: "janesmith.dev",
			},
		},
		{
			name: "email local part is not a portfolio",
			text: "jane.smith@example.com",
			want: types.ContactInfo{Email: "jane.smith@example.com"},
		},
		{
			name: "linkedin and github with scheme",
			text: "https://www.linkedin.com/in/jane and https://github.com/jane",
			want: types.ContactInfo{
				LinkedIn: "https://www.linkedin.com/in/jane",
				GitHub:   "https://github.com/jane",
			},
		},
		{
			name: "international phone",
			text: "Call +1 555 123 4567 anytime",
			want: types.ContactInfo{Phone: "+1 555 123 4567"},
		},
		{
			name: "abbreviations are not urls",
			text: "Completed a B.S. in Computer Science with honors and distinction.",
			want: types.ContactInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractContacts(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractContacts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "first line",
			text: "Jane Smith\nEngineer",
			want: "Jane Smith",
		},
		{
			name: "after blank lines",
			text: "\n\nJane van der Berg\n",
			want: "Jane van der Berg",
		},
		{
			name: "stops at first heading",
			text: "Summary\nJane Smith is an engineer.",
			want: "",
		},
		{
			name: "single word is not a name",
			text: "Jane\njane@example.com",
			want: "",
		},
		{
			name: "line with email is not a name",
			text: "jane smith jane@example.com\n555-123-4567",
			want: "",
		},
		{
			name: "too far from the top",
			text: "a1\nb2\nc3\nd4\ne5\nf6\nJane Smith",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findName(tt.text); got != tt.want {
				t.Errorf("findName() = %q, want %q", got, tt.want)
			}
		})
	}
}
