package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "pvt ltd with periods", input: "Acme Pvt. Ltd.", want: "Acme Private Limited"},
		{name: "private limited upper case", input: "ACME PRIVATE LIMITED", want: "Acme Private Limited"},
		{name: "pvt ltd without periods", input: "acme pvt ltd", want: "Acme Private Limited"},
		{name: "private ltd", input: "Acme Private Ltd", want: "Acme Private Limited"},
		{name: "inc kept", input: "Foo Inc", want: "Foo Inc"},
		{name: "inc with period", input: "FOO INC.", want: "Foo Inc"},
		{name: "incorporated", input: "foo incorporated", want: "Foo Inc"},
		{name: "co kept", input: "Bar Co", want: "Bar Co"},
		{name: "corporation", input: "acme corporation", want: "Acme Corp"},
		{name: "llc", input: "Global Health llc", want: "Global Health LLC"},
		{name: "dotted llc", input: "Global Health L.L.C.", want: "Global Health LLC"},
		{name: "gmbh", input: "siemens gmbh", want: "Siemens GmbH"},
		{name: "dotted gmbh", input: "SIEMENS G.M.B.H.", want: "Siemens GmbH"},
		{name: "ag", input: "bayer ag", want: "Bayer AG"},
		{name: "dotted sa", input: "novartis s.a.", want: "Novartis SA"},
		{name: "plc", input: "astrazeneca p.l.c.", want: "Astrazeneca PLC"},
		{name: "bv", input: "mylan b.v.", want: "Mylan BV"},
		{name: "co ltd", input: "Shanghai Pharma Co., Ltd.", want: "Shanghai Pharma Co Ltd"},
		{name: "pty ltd", input: "aspen pharmacare pty. ltd.", want: "Aspen Pharmacare Pty Ltd"},
		{name: "mid-string legal marker", input: "Mid Pvt Ltd Trading", want: "Mid Private Limited Trading"},
		{name: "ampersand co inc", input: "Merck & Co., Inc.", want: "Merck & Co, Inc"},
		{name: "period joining words kept", input: "Foo Inc.Bar", want: "Foo Inc.bar"},
		{name: "co period before a word", input: "Abc Co.Operative Society", want: "Abc Co.operative Society"},
		{name: "inc period before a space", input: "Foo Inc. Bar", want: "Foo Inc Bar"},
		{name: "limited untouched", input: "ZYDUS LIFESCIENCES LIMITED", want: "Zydus Lifesciences Limited"},
		{name: "whitespace collapsed", input: "  sun   pharma\n industries ", want: "Sun Pharma Industries"},
		{name: "trailing quotes and commas", input: `Cipla Ltd.",`, want: "Cipla Ltd"},
		{name: "empty", input: "", want: UnknownCompany},
		{name: "whitespace only", input: "   \t ", want: UnknownCompany},
		{name: "punctuation only", input: "...", want: UnknownCompany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCompanyName(tt.input))
		})
	}
}

func TestNormalizeCompanyNameIsIdempotent(t *testing.T) {
	inputs := []string{
		"Acme Pvt. Ltd.",
		"ACME PRIVATE LIMITED",
		"Foo Inc",
		"Bar Co",
		"siemens g.m.b.h.",
		"novartis s.a.",
		"Merck & Co., Inc.",
		"Shanghai Pharma Co., Ltd.",
		"Ipca Laboratories Limited",
		"Laboratorios Liomont S.A. de C.V.",
		"fresenius kabi ag & co. kgaa",
		"Dr. Reddy's Laboratories Ltd.",
		"",
		"n/a",
	}

	for _, input := range inputs {
		once := NormalizeCompanyName(input)
		assert.Equal(t, once, NormalizeCompanyName(once), "input %q", input)
	}
}

func TestStripLegalSuffix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Ipca Laboratories Limited", want: "Ipca Laboratories"},
		{input: "Acme Private Limited", want: "Acme"},
		{input: "Shanghai Pharma Co Ltd", want: "Shanghai Pharma"},
		{input: "Merck & Co, Inc", want: "Merck"},
		{input: "Siemens GmbH", want: "Siemens"},
		{input: "Pfizer", want: "Pfizer"},
		{input: "Limited", want: "Limited"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, StripLegalSuffix(tt.input))
		})
	}
}

func TestParseLegalFormsRejectsBadTables(t *testing.T) {
	_, err := ParseLegalForms([]byte("rewrites:\n  - pattern: '('\n    replace: 'X'\n"))
	require.Error(t, err)

	_, err = ParseLegalForms([]byte("rewrites:\n  - pattern: 'INC'\n"))
	require.Error(t, err)

	_, err = ParseLegalForms([]byte("rewrites: [not, a, mapping"))
	require.Error(t, err)
}

func TestParseLegalFormsCustomTable(t *testing.T) {
	forms, err := ParseLegalForms([]byte(`
rewrites:
  - pattern: 'KFT'
    replace: 'KFT'
restore: ['Kft']
strip: ['Kft']
`))
	require.NoError(t, err)

	assert.Equal(t, "Richter Gedeon Kft", forms.NormalizeCompany("RICHTER GEDEON KFT."))
	assert.Equal(t, "Richter Gedeon", forms.StripSuffix("Richter Gedeon Kft"))
}
