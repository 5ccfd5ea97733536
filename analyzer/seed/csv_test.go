package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResumeCSV(t *testing.T) {
	input := strings.Join([]string{
		"ID,Resume_str,Resume_html,Category",
		`16852973,"Go and Rust engineer","<div>ignored</div>",INFORMATION-TECHNOLOGY`,
		`22323967,"Chef with plating skills","<div>ignored</div>",CHEF`,
	}, "\n")

	rows, err := ReadResumeCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ResumeRow{ID: "16852973", Text: "Go and Rust engineer", Category: "INFORMATION-TECHNOLOGY"}, rows[0])
	assert.Equal(t, "CHEF", rows[1].Category)
}

func TestReadResumeCSV_ColumnOrderFromHeader(t *testing.T) {
	input := strings.Join([]string{
		"Category,ID,Resume_str",
		"HR,101,people person",
	}, "\n")

	rows, err := ReadResumeCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ResumeRow{ID: "101", Text: "people person", Category: "HR"}, rows[0])
}

func TestReadResumeCSV_MissingColumns(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{name: "no ID", header: "Resume_str,Category"},
		{name: "no Resume_str", header: "ID,Category"},
		{name: "no Category", header: "ID,Resume_str"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadResumeCSV(strings.NewReader(c.header + "\n"))
			assert.Error(t, err)
		})
	}
}

func TestReadResumeCSV_EmptyID(t *testing.T) {
	input := "ID,Resume_str,Category\n,text,HR\n"

	_, err := ReadResumeCSV(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadResumeCSV_EmptyFile(t *testing.T) {
	_, err := ReadResumeCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadResumeCSV_NoRows(t *testing.T) {
	rows, err := ReadResumeCSV(strings.NewReader("ID,Resume_str,Category\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}
